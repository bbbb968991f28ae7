package availability

import (
	"errors"

	"gorm.io/gorm"

	"github.com/barbercloud/barbercloud-api/models"
)

// GormStore reads the engine's snapshots from the relational store.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetService(barbershopID, serviceID uint) (*models.Service, error) {
	var service models.Service
	err := s.DB.Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *GormStore) GetWorkingHours(barbershopID uint, weekday int) ([]models.WorkingHour, error) {
	var ranges []models.WorkingHour
	err := s.DB.
		Where("barbershop_id = ? AND weekday = ?", barbershopID, weekday).
		Order("start_time asc").
		Find(&ranges).Error
	return ranges, err
}

func (s *GormStore) GetBlockedTimes(barbershopID uint, date string) ([]models.BlockedTime, error) {
	var blocks []models.BlockedTime
	err := s.DB.
		Where("barbershop_id = ? AND date_from <= ? AND (date_to IS NULL OR date_to >= ?)",
			barbershopID, date, date).
		Find(&blocks).Error
	return blocks, err
}

func (s *GormStore) GetAppointments(barbershopID uint, date string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.DB.
		Preload("Service").
		Where("barbershop_id = ? AND date = ? AND status <> ?",
			barbershopID, date, models.StatusCanceled).
		Find(&appointments).Error
	return appointments, err
}
