package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/barbercloud/barbercloud-api/availability"
	"github.com/barbercloud/barbercloud-api/models"
)

// errStatus runs a handler that fails with err through a throwaway app and
// returns the response it produced.
func errStatus(t *testing.T, handler func(c *fiber.Ctx, err error) error, err error) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return handler(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestValidateBooking(t *testing.T) {
	valid := bookingInput{
		ServiceID:     1,
		Date:          "2025-07-01",
		Time:          "10:30",
		CustomerName:  "Juan Pérez",
		CustomerPhone: "3511234567",
	}

	t.Run("valid input", func(t *testing.T) {
		in := valid
		assert.Equal(t, "", validateBooking(&in))
	})

	t.Run("missing service", func(t *testing.T) {
		in := valid
		in.ServiceID = 0
		assert.Equal(t, "Missing service_id", validateBooking(&in))
	})

	t.Run("bad date", func(t *testing.T) {
		in := valid
		in.Date = "tomorrow"
		assert.Equal(t, "Invalid date (YYYY-MM-DD)", validateBooking(&in))
	})

	t.Run("bad time", func(t *testing.T) {
		in := valid
		in.Time = "10:30pm"
		assert.Equal(t, "Invalid time (HH:MM)", validateBooking(&in))
	})

	t.Run("name too short", func(t *testing.T) {
		in := valid
		in.CustomerName = " J "
		assert.Equal(t, "Missing customer name", validateBooking(&in))
	})

	t.Run("phone too short", func(t *testing.T) {
		in := valid
		in.CustomerPhone = "351"
		assert.Equal(t, "Missing customer phone", validateBooking(&in))
	})
}

func TestAvailabilityErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"service not found", availability.ErrServiceNotFound, fiber.StatusNotFound},
		{"slot unavailable", availability.ErrSlotUnavailable, fiber.StatusConflict},
		{"invalid date", availability.ErrInvalidDate, fiber.StatusBadRequest},
		{"invalid time", availability.ErrInvalidTime, fiber.StatusBadRequest},
		{"store failure", errors.New("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := errStatus(t, availabilityError, tc.err)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestBookingInsertErrorStatuses(t *testing.T) {
	t.Run("duplicate key is a lost race, not a failure", func(t *testing.T) {
		status, body := errStatus(t, bookingInsertError, gorm.ErrDuplicatedKey)
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "That time is no longer available", body["error"])
	})

	t.Run("wrapped duplicate key still conflicts", func(t *testing.T) {
		wrapped := fmt.Errorf("insert appointment: %w", gorm.ErrDuplicatedKey)
		status, _ := errStatus(t, bookingInsertError, wrapped)
		assert.Equal(t, fiber.StatusConflict, status)
	})

	t.Run("anything else is a server error", func(t *testing.T) {
		status, _ := errStatus(t, bookingInsertError, errors.New("connection reset"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})
}

func TestLookupErrorStatuses(t *testing.T) {
	t.Run("missing shop is 404", func(t *testing.T) {
		status, body := errStatus(t, shopLookupError, gorm.ErrRecordNotFound)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Barbershop not found", body["error"])
	})

	t.Run("shop lookup outage is 500, not 404", func(t *testing.T) {
		status, _ := errStatus(t, shopLookupError, errors.New("dial tcp: connection refused"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})

	t.Run("missing booking is 404", func(t *testing.T) {
		status, _ := errStatus(t, bookingLookupError, gorm.ErrRecordNotFound)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("booking lookup outage is 500", func(t *testing.T) {
		status, _ := errStatus(t, bookingLookupError, errors.New("dial tcp: connection refused"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})
}

func TestDepositPercentage(t *testing.T) {
	override := 50

	t.Run("shop default", func(t *testing.T) {
		shop := &models.Barbershop{DefaultDepositPercentage: 20}
		assert.Equal(t, 20, depositPercentage(shop, &models.Service{}))
	})

	t.Run("service override wins", func(t *testing.T) {
		shop := &models.Barbershop{DefaultDepositPercentage: 20}
		svc := &models.Service{DepositPercentage: &override}
		assert.Equal(t, 50, depositPercentage(shop, svc))
	})

	t.Run("unset shop default falls back", func(t *testing.T) {
		assert.Equal(t, models.DefaultDepositPercentage,
			depositPercentage(&models.Barbershop{}, &models.Service{}))
	})
}
