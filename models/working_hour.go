package models

import (
	"gorm.io/gorm"
)

// WorkingHour is one recurring open range on a weekday. A shop may have
// several ranges per weekday (split morning/afternoon shifts).
type WorkingHour struct {
	gorm.Model
	BarbershopID uint   `json:"barbershop_id"`
	Weekday      int    `json:"weekday"`    // 0=Sunday .. 6=Saturday
	StartTime    string `json:"start_time"` // "HH:MM" 24h
	EndTime      string `json:"end_time"`   // "HH:MM" 24h
}
