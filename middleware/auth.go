package middleware

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/barbercloud/barbercloud-api/redis"
)

func Protected() fiber.Handler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			if userToken == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "No authentication token",
				})
			}

			token, ok := userToken.(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}

			if redis.IsTokenRevoked(token.Raw) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Token has been revoked",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			userID, err := extractUintClaim(claims, "id")
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid user ID in token",
				})
			}

			barbershopID, err := extractUintClaim(claims, "barbershop_id")
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid barbershop ID in token",
				})
			}

			role, _ := claims["role"].(string)
			if role == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid role in token",
				})
			}

			c.Locals("userID", userID)
			c.Locals("barbershopID", barbershopID)
			c.Locals("role", role)

			return c.Next()
		},
	})
}

// extractUintClaim handles the number formats the claim may arrive in
func extractUintClaim(claims jwt.MapClaims, key string) (uint, error) {
	val := claims[key]
	if val == nil {
		return 0, fmt.Errorf("no %s found in claims", key)
	}

	switch v := val.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse %s string: %v", key, err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported %s type: %T", key, v)
	}
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
