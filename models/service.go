package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	BarbershopID    uint    `json:"barbershop_id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Price           int     `json:"price"`
	DurationMinutes int     `json:"duration_minutes" gorm:"default:30"`
	// DepositPercentage overrides the shop default when set.
	DepositPercentage *int `json:"deposit_percentage"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.DurationMinutes == 0 {
		s.DurationMinutes = 30
	}
	return nil
}
