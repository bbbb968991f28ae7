package models

import (
	"gorm.io/gorm"
)

const (
	DefaultDepositPercentage = 15
	DefaultPlatformFee       = 200
)

type Barbershop struct {
	gorm.Model
	Name                     string  `json:"name"`
	City                     *string `json:"city"`
	Address                  *string `json:"address"`
	Phone                    *string `json:"phone"`
	Slug                     *string `json:"slug" gorm:"uniqueIndex"`
	LogoURL                  *string `json:"logo_url"`
	DefaultDepositPercentage int     `json:"default_deposit_percentage" gorm:"default:15"`
	PlatformFee              int     `json:"platform_fee" gorm:"default:200"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:BarbershopID"`
}

func (b *Barbershop) BeforeCreate(tx *gorm.DB) error {
	if b.DefaultDepositPercentage == 0 {
		b.DefaultDepositPercentage = DefaultDepositPercentage
	}
	return nil
}
