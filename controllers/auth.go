package controllers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/redis"
)

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

func signToken(user *models.BarbershopUser, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":            user.ID,
		"email":         user.Email,
		"barbershop_id": user.BarbershopID,
		"role":          user.Role,
		"exp":           time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}

// Register creates an owner account for an existing barbershop
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		BarbershopID uint   `json:"barbershop_id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.BarbershopID == 0 || input.Name == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	var existing models.BarbershopUser
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.BarbershopUser{
		BarbershopID: input.BarbershopID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleOwner,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"user": user,
	})
}

// Login handles owner authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.BarbershopUser
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	tokenString, err := signToken(&user, 7*24*time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"token": tokenString,
		"user": fiber.Map{
			"id":            user.ID,
			"name":          user.Name,
			"email":         user.Email,
			"barbershop_id": user.BarbershopID,
			"role":          user.Role,
		},
	})
}

// GetUserProfile returns the current owner's profile
func GetUserProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var user models.BarbershopUser
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user)
}

// Logout revokes the presented token until it expires on its own
func Logout(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No authentication token",
		})
	}

	ttl := time.Minute
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			ttl = time.Until(time.Unix(int64(exp), 0))
		}
	}

	if err := redis.RevokeToken(token.Raw, ttl); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to revoke token",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}
