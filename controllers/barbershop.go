package controllers

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

// GetAllBarbershops lists every barbershop (public, demo listing)
func GetAllBarbershops(c *fiber.Ctx) error {
	var shops []models.Barbershop
	if err := db.DB.
		Select("id", "name", "city", "address", "phone", "slug", "logo_url").
		Order("created_at desc").
		Find(&shops).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to list barbershops",
			Error:   err.Error(),
		})
	}
	return c.JSON(shops)
}

// CreateBarbershop creates a shop directly. When PLATFORM_ADMIN_KEY is set
// the x-admin-key header must match; otherwise the endpoint is open (only
// for testing installs).
func CreateBarbershop(c *fiber.Ctx) error {
	if key := os.Getenv("PLATFORM_ADMIN_KEY"); key != "" {
		if c.Get("x-admin-key") != key {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or incorrect x-admin-key",
			})
		}
	}

	type CreateInput struct {
		Name                     string  `json:"name"`
		City                     *string `json:"city"`
		Address                  *string `json:"address"`
		Phone                    *string `json:"phone"`
		Slug                     *string `json:"slug"`
		DefaultDepositPercentage *int    `json:"default_deposit_percentage"`
		PlatformFee              *int    `json:"platform_fee"`
	}

	input := new(CreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing name",
		})
	}

	shop := models.Barbershop{
		Name:                     input.Name,
		City:                     input.City,
		Address:                  input.Address,
		Phone:                    input.Phone,
		DefaultDepositPercentage: models.DefaultDepositPercentage,
		PlatformFee:              models.DefaultPlatformFee,
	}
	if input.DefaultDepositPercentage != nil {
		shop.DefaultDepositPercentage = *input.DefaultDepositPercentage
	}
	if input.PlatformFee != nil {
		shop.PlatformFee = *input.PlatformFee
	}

	if input.Slug != nil {
		if slug := utils.Slugify(*input.Slug); slug != "" {
			var existing models.Barbershop
			if db.DB.Where("slug = ?", slug).First(&existing).RowsAffected > 0 {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "That slug is already in use",
				})
			}
			shop.Slug = &slug
		}
	}

	if err := db.DB.Create(&shop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create barbershop",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"barbershop": shop,
	})
}

// GetBarbershopBySlug returns a shop's public card
func GetBarbershopBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var shop models.Barbershop
	if db.DB.Where("slug = ?", slug).First(&shop).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Barbershop not found",
		})
	}
	return c.JSON(fiber.Map{
		"id":                         shop.ID,
		"name":                       shop.Name,
		"city":                       shop.City,
		"address":                    shop.Address,
		"phone":                      shop.Phone,
		"slug":                       shop.Slug,
		"logo_url":                   shop.LogoURL,
		"default_deposit_percentage": shop.DefaultDepositPercentage,
	})
}

// GetMyBarbershop returns the logged-in owner's shop
func GetMyBarbershop(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var shop models.Barbershop
	if err := db.DB.First(&shop, barbershopID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Barbershop not found",
		})
	}
	return c.JSON(shop)
}

// UpdateMyBarbershop edits general shop data. The platform fee is not
// editable here.
func UpdateMyBarbershop(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	type UpdateInput struct {
		Name    *string `json:"name"`
		City    *string `json:"city"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Slug    *string `json:"slug"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var shop models.Barbershop
	if err := db.DB.First(&shop, barbershopID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Barbershop not found",
		})
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.City != nil {
		shop.City = input.City
	}
	if input.Address != nil {
		shop.Address = input.Address
	}
	if input.Phone != nil {
		shop.Phone = input.Phone
	}
	if input.Slug != nil {
		slug := utils.Slugify(*input.Slug)
		if slug == "" {
			shop.Slug = nil
		} else {
			var existing models.Barbershop
			if db.DB.Where("slug = ?", slug).First(&existing).RowsAffected > 0 && existing.ID != shop.ID {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "That slug is already in use",
				})
			}
			shop.Slug = &slug
		}
	}

	if err := db.DB.Save(&shop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update barbershop",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":         true,
		"barbershop": shop,
	})
}

// UpdateMySettings edits only the default deposit percentage
func UpdateMySettings(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	type SettingsInput struct {
		DefaultDepositPercentage int `json:"default_deposit_percentage"`
	}

	input := new(SettingsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.DefaultDepositPercentage < 0 || input.DefaultDepositPercentage > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "default_deposit_percentage must be between 0 and 100",
		})
	}

	if err := db.DB.Model(&models.Barbershop{}).
		Where("id = ?", barbershopID).
		Update("default_deposit_percentage", input.DefaultDepositPercentage).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update settings",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok": true,
		"barbershop": fiber.Map{
			"id":                         barbershopID,
			"default_deposit_percentage": input.DefaultDepositPercentage,
		},
	})
}

// UploadMyLogo stores the shop logo on Cloudinary and saves the URL
func UploadMyLogo(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing logo file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot read logo file",
		})
	}
	defer file.Close()

	publicID := fmt.Sprintf("barbershop-%d-logo", barbershopID)
	url, err := utils.UploadToCloudinary(file, publicID, "logos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload logo",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&models.Barbershop{}).
		Where("id = ?", barbershopID).
		Update("logo_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save logo URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":       true,
		"logo_url": url,
	})
}
