package db

import (
	"fmt"
	"log"

	"github.com/barbercloud/barbercloud-api/models"
)

// Seed creates a demo barbershop with a couple of services so a fresh
// install has something to book against.
func Seed() {
	Init()

	slug := "barberia-demo"
	var existing models.Barbershop
	if DB.Where("slug = ?", slug).First(&existing).RowsAffected > 0 {
		fmt.Println("Seed skipped: demo barbershop already exists")
		return
	}

	city := "Hernando"
	shop := models.Barbershop{
		Name:                     "Barbería Demo - Hernando",
		City:                     &city,
		Slug:                     &slug,
		DefaultDepositPercentage: models.DefaultDepositPercentage,
		PlatformFee:              models.DefaultPlatformFee,
		Services: []models.Service{
			{Name: "Corte clásico", Price: 4000, DurationMinutes: 30},
			{Name: "Degradé + barba", Price: 5500, DurationMinutes: 45},
		},
	}
	if err := DB.Create(&shop).Error; err != nil {
		log.Fatal("Failed to seed demo barbershop: ", err)
	}

	fmt.Printf("✅ Seed OK: barbershop %d (%s)\n", shop.ID, slug)
}
