package controllers

import (
	"errors"
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/barbercloud/barbercloud-api/availability"
	"github.com/barbercloud/barbercloud-api/db"
	"github.com/barbercloud/barbercloud-api/models"
	"github.com/barbercloud/barbercloud-api/utils"
)

func slotEngine() *availability.Engine {
	return availability.NewEngine(availability.NewGormStore(db.DB))
}

func shopBySlug(slug string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := db.DB.Where("slug = ?", slug).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// shopLookupError keeps a storage outage from masquerading as a missing shop
func shopLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Barbershop not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Failed to load barbershop",
		Error:   err.Error(),
	})
}

// GetPublicBarbershop godoc
// @Summary Get a barbershop's public card by slug
// @Tags public
// @Produce json
// @Param slug path string true "Barbershop slug"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /public/{slug}/barbershop [get]
func GetPublicBarbershop(c *fiber.Ctx) error {
	shop, err := shopBySlug(c.Params("slug"))
	if err != nil {
		return shopLookupError(c, err)
	}
	return c.JSON(fiber.Map{
		"ok": true,
		"item": fiber.Map{
			"id":                         shop.ID,
			"name":                       shop.Name,
			"city":                       shop.City,
			"address":                    shop.Address,
			"phone":                      shop.Phone,
			"slug":                       shop.Slug,
			"logo_url":                   shop.LogoURL,
			"default_deposit_percentage": shop.DefaultDepositPercentage,
			"platform_fee":               shop.PlatformFee,
		},
	})
}

// GetPublicServices godoc
// @Summary List a barbershop's services by slug
// @Tags public
// @Produce json
// @Param slug path string true "Barbershop slug"
// @Success 200 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /public/{slug}/services [get]
func GetPublicServices(c *fiber.Ctx) error {
	shop, err := shopBySlug(c.Params("slug"))
	if err != nil {
		return shopLookupError(c, err)
	}

	var items []models.Service
	if err := db.DB.Where("barbershop_id = ?", shop.ID).Order("id asc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to list services",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"items":         items,
		"barbershop_id": shop.ID,
	})
}

// GetAvailability godoc
// @Summary Open slots for a service on a date
// @Tags public
// @Produce json
// @Param slug path string true "Barbershop slug"
// @Param serviceId query int true "Service ID"
// @Param date query string true "Date YYYY-MM-DD"
// @Param step query int false "Slot grid in minutes (default 15)"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /public/{slug}/availability [get]
func GetAvailability(c *fiber.Ctx) error {
	serviceID := c.QueryInt("serviceId")
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing serviceId",
		})
	}
	date := c.Query("date")
	if !availability.IsValidDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date (YYYY-MM-DD)",
		})
	}

	shop, err := shopBySlug(c.Params("slug"))
	if err != nil {
		return shopLookupError(c, err)
	}

	engine := slotEngine()

	// past dates are not an error, just never bookable
	if date < availability.DateOf(engine.Now()) {
		return c.JSON(fiber.Map{
			"ok":     true,
			"slots":  []string{},
			"reason": "past_date",
		})
	}

	res, err := engine.ComputeSlots(shop.ID, uint(serviceID), date, c.QueryInt("step", availability.DefaultStep))
	if err != nil {
		return availabilityError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"date":    date,
		"service": res.Service,
		"slots":   res.Slots,
	})
}

type bookingInput struct {
	ServiceID     uint    `json:"service_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Notes         *string `json:"notes"`
}

func validateBooking(in *bookingInput) string {
	if in.ServiceID == 0 {
		return "Missing service_id"
	}
	if !availability.IsValidDate(in.Date) {
		return "Invalid date (YYYY-MM-DD)"
	}
	if !availability.IsValidTime(in.Time) {
		return "Invalid time (HH:MM)"
	}
	if len(strings.TrimSpace(in.CustomerName)) < 2 {
		return "Missing customer name"
	}
	if len(strings.TrimSpace(in.CustomerPhone)) < 6 {
		return "Missing customer phone"
	}
	return ""
}

// CreateBooking godoc
// @Summary Book a slot
// @Description Re-validates the requested time against a fresh slot
// @Description computation before inserting; a conflict means the slot was
// @Description taken between display and submit.
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Barbershop slug"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Failure 409 {object} fiber.Map
// @Router /public/{slug}/book [post]
func CreateBooking(c *fiber.Ctx) error {
	input := new(bookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if msg := validateBooking(input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	shop, err := shopBySlug(c.Params("slug"))
	if err != nil {
		return shopLookupError(c, err)
	}

	engine := slotEngine()
	if input.Date < availability.DateOf(engine.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot book past dates",
		})
	}

	res, err := engine.CheckSlot(shop.ID, input.ServiceID, input.Date, input.Time, availability.DefaultStep)
	if err != nil {
		return availabilityError(c, err)
	}

	depositPct := depositPercentage(shop, res.Service)
	depositAmount := int(math.Round(float64(res.Service.Price*depositPct) / 100))
	totalToPay := depositAmount + shop.PlatformFee

	appointment := models.Appointment{
		BarbershopID:               shop.ID,
		ServiceID:                  res.Service.ID,
		Date:                       input.Date,
		Time:                       input.Time,
		CustomerName:               strings.TrimSpace(input.CustomerName),
		CustomerPhone:              strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:              input.CustomerEmail,
		Notes:                      input.Notes,
		Status:                     models.StatusPending,
		PaymentStatus:              models.PaymentUnpaid,
		DepositPercentageAtBooking: depositPct,
		DepositAmount:              depositAmount,
		PlatformFee:                shop.PlatformFee,
		TotalToPay:                 totalToPay,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return bookingInsertError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"id":        appointment.ID,
		"reference": appointment.Reference,
		"total_to_pay": fiber.Map{
			"deposit_amount": depositAmount,
			"platform_fee":   shop.PlatformFee,
			"total":          totalToPay,
		},
	})
}

// GetBookingByReference lets a customer review a booking without an account
func GetBookingByReference(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.Preload("Service").
		Where("reference = ?", c.Params("ref")).
		First(&appointment).Error; err != nil {
		return bookingLookupError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok": true,
		"item": fiber.Map{
			"reference":      appointment.Reference,
			"date":           appointment.Date,
			"time":           appointment.Time,
			"status":         appointment.Status,
			"service":        appointment.Service,
			"customer_name":  appointment.CustomerName,
			"deposit_amount": appointment.DepositAmount,
			"total_to_pay":   appointment.TotalToPay,
		},
	})
}

// CancelBookingByReference frees the slot for other customers
func CancelBookingByReference(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := db.DB.Where("reference = ?", c.Params("ref")).
		First(&appointment).Error; err != nil {
		return bookingLookupError(c, err)
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCanceled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Booking can no longer be canceled",
		})
	}

	return c.JSON(fiber.Map{
		"ok":     true,
		"status": appointment.Status,
	})
}

func bookingLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Failed to load booking",
		Error:   err.Error(),
	})
}

// depositPercentage picks the pricing snapshot percentage: a per-service
// override when set, otherwise the shop default with the platform fallback.
func depositPercentage(shop *models.Barbershop, service *models.Service) int {
	if service.DepositPercentage != nil {
		return *service.DepositPercentage
	}
	if shop.DefaultDepositPercentage == 0 {
		return models.DefaultDepositPercentage
	}
	return shop.DefaultDepositPercentage
}

// bookingInsertError translates the insert failure. A duplicate key means two
// customers raced for the same slot; the unique index on (barbershop_id,
// date, time) decided, and the loser gets a conflict.
func bookingInsertError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "That time is no longer available",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Failed to create booking",
		Error:   err.Error(),
	})
}

// availabilityError maps engine sentinels to HTTP statuses
func availabilityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrServiceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found for this barbershop",
		})
	case errors.Is(err, availability.ErrSlotUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "That time is no longer available",
		})
	case errors.Is(err, availability.ErrInvalidDate), errors.Is(err, availability.ErrInvalidTime):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute availability",
			Error:   err.Error(),
		})
	}
}
