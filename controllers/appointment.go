package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barbercloud/barbercloud-api/availability"
	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

// GetMyAppointments godoc
// @Summary List the owner's appointments
// @Description Optionally filtered to one date with ?date=YYYY-MM-DD
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/mine [get]
func GetMyAppointments(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	query := db.DB.Preload("Service").
		Where("barbershop_id = ?", barbershopID).
		Order("date asc, time asc")

	if date := c.Query("date"); date != "" {
		if !availability.IsValidDate(date) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date (YYYY-MM-DD)",
			})
		}
		query = query.Where("date = ?", date)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// UpdateMyAppointmentStatus godoc
// @Summary Change an appointment's status
// @Description Allowed transitions: pending to confirmed or canceled,
// @Description confirmed to completed or canceled.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/mine/{id}/status [patch]
func UpdateMyAppointmentStatus(c *fiber.Ctx) error {
	barbershopID, ok := c.Locals("barbershopID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Barbershop ID not found in context",
		})
	}

	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var appointment models.Appointment
	if db.DB.Where("id = ? AND barbershop_id = ?", c.Params("id"), barbershopID).
		First(&appointment).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}
