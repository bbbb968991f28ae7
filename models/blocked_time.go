package models

import (
	"gorm.io/gorm"
)

// BlockedTime removes availability for a date range. With both time fields
// nil the whole day is blocked for every covered date; with both set only
// that sub-range is blocked. DateTo nil means the block covers DateFrom only.
type BlockedTime struct {
	gorm.Model
	BarbershopID uint    `json:"barbershop_id"`
	DateFrom     string  `json:"date_from"` // "YYYY-MM-DD"
	DateTo       *string `json:"date_to"`
	StartTime    *string `json:"start_time"` // "HH:MM"
	EndTime      *string `json:"end_time"`
	Reason       *string `json:"reason"`
}

// CoversFullDay reports whether the block removes the entire day.
func (b *BlockedTime) CoversFullDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}
