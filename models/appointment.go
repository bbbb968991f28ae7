package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

type Appointment struct {
	gorm.Model
	// Reference is the public handle customers use to look up or cancel
	// a booking without an account.
	Reference    string  `json:"reference" gorm:"uniqueIndex"`
	BarbershopID uint    `json:"barbershop_id"`
	ServiceID    uint    `json:"service_id"`
	Service      Service `json:"service" gorm:"foreignKey:ServiceID"`

	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // "HH:MM"

	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Notes         *string `json:"notes"`

	Status        AppointmentStatus `json:"status"`
	PaymentStatus string            `json:"payment_status"`

	// Pricing snapshot taken at booking time so later shop or service
	// edits do not change what the customer agreed to pay.
	DepositPercentageAtBooking int `json:"deposit_percentage_at_booking"`
	DepositAmount              int `json:"deposit_amount"`
	PlatformFee                int `json:"platform_fee"`
	TotalToPay                 int `json:"total_to_pay"`

	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentUnpaid
	}
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}
	return nil
}

// CanTransitionTo reports whether the status change is allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCanceled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCanceled
	default:
		return false
	}
}

// UpdateStatus applies a status transition and persists it.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if !a.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
	}
	a.Status = newStatus
	return tx.Save(a).Error
}
