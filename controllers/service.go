package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

// GetAllServices lists services, optionally filtered by ?barbershopId=
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB.Order("id asc")
	if shopID := c.QueryInt("barbershopId"); shopID > 0 {
		query = query.Where("barbershop_id = ?", shopID)
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetMyServices lists the owner's services
func GetMyServices(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var services []models.Service
	if err := db.DB.Where("barbershop_id = ?", barbershopID).Order("id asc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"ok":    true,
		"items": services,
	})
}

type serviceInput struct {
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	Price             int     `json:"price"`
	DurationMinutes   int     `json:"duration_minutes"`
	DepositPercentage *int    `json:"deposit_percentage"`
}

func (in *serviceInput) validate() string {
	if in.Name == "" {
		return "Missing name"
	}
	if in.Price < 0 {
		return "price cannot be negative"
	}
	if in.DurationMinutes < 0 {
		return "duration_minutes cannot be negative"
	}
	if in.DepositPercentage != nil && (*in.DepositPercentage < 0 || *in.DepositPercentage > 100) {
		return "deposit_percentage must be between 0 and 100"
	}
	return ""
}

// CreateMyService adds a service to the owner's shop
func CreateMyService(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if msg := input.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	service := models.Service{
		BarbershopID:      barbershopID,
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		DurationMinutes:   input.DurationMinutes,
		DepositPercentage: input.DepositPercentage,
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateMyService edits one of the owner's services
func UpdateMyService(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var service models.Service
	if db.DB.Where("id = ? AND barbershop_id = ?", c.Params("id"), barbershopID).
		First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	input := new(serviceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if msg := input.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Price = input.Price
	if input.DurationMinutes > 0 {
		service.DurationMinutes = input.DurationMinutes
	}
	service.DepositPercentage = input.DepositPercentage

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}

	return c.JSON(service)
}

// DeleteMyService removes one of the owner's services
func DeleteMyService(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var service models.Service
	if db.DB.Where("id = ? AND barbershop_id = ?", c.Params("id"), barbershopID).
		First(&service).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
