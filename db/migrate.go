package db

import (
	"fmt"
	"log"

	"github.com/barbercloud/barbercloud-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Barbershop{},
		&models.BarbershopUser{},
		&models.Service{},
		&models.WorkingHour{},
		&models.BlockedTime{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// One live appointment per shop+date+time. Canceled rows are excluded
	// so a freed slot can be rebooked; this index is the authoritative
	// guard behind the booking path's availability re-check.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
		ON appointments (barbershop_id, date, time)
		WHERE status <> 'canceled' AND deleted_at IS NULL
	`).Error
	if err != nil {
		log.Fatal("Failed to create slot uniqueness index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
