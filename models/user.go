package models

import (
	"time"
)

const RoleOwner = "owner"

type BarbershopUser struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `json:"barbershop,omitempty" gorm:"foreignKey:BarbershopID"`
	Name         string     `json:"name"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role" gorm:"default:owner"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
