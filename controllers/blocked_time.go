package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/availability"
	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

type blockedTimeInput struct {
	DateFrom  string  `json:"date_from"`
	DateTo    *string `json:"date_to"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    *string `json:"reason"`
}

// validateBlockedTime returns "" when the input is acceptable. Time fields
// must come as a pair: one without the other is invalid.
func validateBlockedTime(in *blockedTimeInput) string {
	if !availability.IsValidDate(in.DateFrom) {
		return "Invalid date_from (YYYY-MM-DD)"
	}
	if in.DateTo != nil {
		if !availability.IsValidDate(*in.DateTo) {
			return "Invalid date_to (YYYY-MM-DD)"
		}
		if *in.DateTo < in.DateFrom {
			return "date_to cannot be before date_from"
		}
	}

	if (in.StartTime != nil) != (in.EndTime != nil) {
		return "To block a time range, send both start_time and end_time"
	}
	if in.StartTime != nil {
		if !availability.IsValidTime(*in.StartTime) || !availability.IsValidTime(*in.EndTime) {
			return "Invalid time (HH:MM)"
		}
		if availability.ToMinutes(*in.EndTime) <= availability.ToMinutes(*in.StartTime) {
			return "end_time must be after start_time"
		}
	}
	return ""
}

// GetMyBlockedTimes lists the owner's blocks
func GetMyBlockedTimes(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var items []models.BlockedTime
	if err := db.DB.Where("barbershop_id = ?", barbershopID).
		Order("date_from asc, start_time asc, created_at asc").
		Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch blocked times",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"items": items,
	})
}

// CreateMyBlockedTime adds a block (whole days or a time range per day)
func CreateMyBlockedTime(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	input := new(blockedTimeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if msg := validateBlockedTime(input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	block := models.BlockedTime{
		BarbershopID: barbershopID,
		DateFrom:     input.DateFrom,
		DateTo:       input.DateTo,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Reason:       input.Reason,
	}
	if err := db.DB.Create(&block).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create blocked time",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"item": block,
	})
}

// DeleteMyBlockedTime removes a block, only when it belongs to the owner's
// shop
func DeleteMyBlockedTime(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var block models.BlockedTime
	if db.DB.Where("id = ? AND barbershop_id = ?", c.Params("id"), barbershopID).
		First(&block).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blocked time not found",
		})
	}

	if err := db.DB.Delete(&block).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete blocked time",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok": true,
	})
}
