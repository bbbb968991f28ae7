package controllers

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/barbercloud/barbercloud-api/availability"
	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

type workingHourItem struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type workingHourPayload struct {
	Items []workingHourItem `json:"items"`
	Days  []struct {
		Weekday int `json:"weekday"`
		Ranges  []struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"ranges"`
	} `json:"days"`
}

// normalizeWorkingHours accepts either {items:[...]} or
// {days:[{weekday,ranges}]} and flattens both to items. Returns nil when
// neither shape is present.
func normalizeWorkingHours(payload *workingHourPayload) []workingHourItem {
	if payload.Items != nil {
		return payload.Items
	}
	if payload.Days == nil {
		return nil
	}
	out := []workingHourItem{}
	for _, d := range payload.Days {
		for _, r := range d.Ranges {
			out = append(out, workingHourItem{
				Weekday:   d.Weekday,
				StartTime: r.Start,
				EndTime:   r.End,
			})
		}
	}
	return out
}

// validateWorkingHours checks structure and rejects overlapping ranges on
// the same weekday. Returns "" when the items are valid.
func validateWorkingHours(items []workingHourItem) string {
	if items == nil {
		return "Invalid payload. Send {items:[...]} or {days:[...]}"
	}

	byDay := map[int][]workingHourItem{}
	for _, it := range items {
		if it.Weekday < 0 || it.Weekday > 6 {
			return "weekday must be between 0 and 6"
		}
		if !availability.IsValidTime(it.StartTime) || !availability.IsValidTime(it.EndTime) {
			return "Invalid time (HH:MM format)"
		}
		if availability.ToMinutes(it.StartTime) >= availability.ToMinutes(it.EndTime) {
			return "A range has start >= end"
		}
		byDay[it.Weekday] = append(byDay[it.Weekday], it)
	}

	for weekday, ranges := range byDay {
		sort.Slice(ranges, func(i, j int) bool {
			return availability.ToMinutes(ranges[i].StartTime) < availability.ToMinutes(ranges[j].StartTime)
		})
		for i := 1; i < len(ranges); i++ {
			if availability.ToMinutes(ranges[i].StartTime) < availability.ToMinutes(ranges[i-1].EndTime) {
				return fmt.Sprintf("Overlapping ranges on weekday=%d", weekday)
			}
		}
	}

	return ""
}

// GetMyWorkingHours returns the owner's weekly template
func GetMyWorkingHours(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	var items []models.WorkingHour
	if err := db.DB.Where("barbershop_id = ?", barbershopID).
		Order("weekday asc, start_time asc").
		Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch working hours",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"items": items,
	})
}

// ReplaceMyWorkingHours swaps the whole weekly template in one transaction
func ReplaceMyWorkingHours(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	payload := new(workingHourPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	items := normalizeWorkingHours(payload)
	if msg := validateWorkingHours(items); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("barbershop_id = ?", barbershopID).
			Delete(&models.WorkingHour{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]models.WorkingHour, 0, len(items))
		for _, it := range items {
			rows = append(rows, models.WorkingHour{
				BarbershopID: barbershopID,
				Weekday:      it.Weekday,
				StartTime:    it.StartTime,
				EndTime:      it.EndTime,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save working hours",
			Error:   err.Error(),
		})
	}

	var saved []models.WorkingHour
	if err := db.DB.Where("barbershop_id = ?", barbershopID).
		Order("weekday asc, start_time asc").
		Find(&saved).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch working hours",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":    true,
		"items": saved,
	})
}
