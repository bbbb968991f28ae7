package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
)

// Signup creates a barbershop and its owner in one step and returns a
// long-lived token so the new owner lands directly in the admin panel.
func Signup(c *fiber.Ctx) error {
	type SignupInput struct {
		ShopName  string `json:"shop_name"`
		City      string `json:"city"`
		Address   string `json:"address"`
		Phone     string `json:"phone"`
		OwnerName string `json:"owner_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	input := new(SignupInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	shopName := strings.TrimSpace(input.ShopName)
	city := strings.TrimSpace(input.City)
	ownerName := strings.TrimSpace(input.OwnerName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := strings.TrimSpace(input.Password)

	if shopName == "" || city == "" || ownerName == "" || email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Missing fields: shop_name, city, owner_name, email, password",
		})
	}

	var existing models.BarbershopUser
	if db.DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"ok":    false,
			"error": "That email is already registered",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	var shop models.Barbershop
	var user models.BarbershopUser

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		shop = models.Barbershop{
			Name:                     shopName,
			City:                     &city,
			DefaultDepositPercentage: models.DefaultDepositPercentage,
			PlatformFee:              models.DefaultPlatformFee,
		}
		if input.Address != "" {
			addr := strings.TrimSpace(input.Address)
			shop.Address = &addr
		}
		if input.Phone != "" {
			phone := strings.TrimSpace(input.Phone)
			shop.Phone = &phone
		}
		if err := tx.Create(&shop).Error; err != nil {
			return err
		}

		user = models.BarbershopUser{
			BarbershopID: shop.ID,
			Name:         ownerName,
			Email:        email,
			PasswordHash: string(hashed),
			Role:         models.RoleOwner,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		// demo services so the booking page is not empty
		demo := []models.Service{
			{BarbershopID: shop.ID, Name: "Corte", Price: 4000, DurationMinutes: 30},
			{BarbershopID: shop.ID, Name: "Corte + Barba", Price: 5500, DurationMinutes: 45},
		}
		return tx.Create(&demo).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to create barbershop",
		})
	}

	tokenString, err := signToken(&user, 30*24*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"token": tokenString,
		"barbershop": fiber.Map{
			"id":   shop.ID,
			"name": shop.Name,
			"city": shop.City,
		},
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
