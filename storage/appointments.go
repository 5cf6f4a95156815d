package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tufail-188/SkinAI-Hub/models"
)

// AppointmentStore owns the appointments table. Rows are insert-only; the
// core never updates or deletes a booking.
type AppointmentStore struct {
	db *gorm.DB
}

func NewAppointmentStore(db *gorm.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

// Create performs the single atomic booking write and fills in the
// store-assigned id and created_at.
func (s *AppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	return s.db.WithContext(ctx).Create(appt).Error
}

// ListNewestFirst returns every appointment for admin review.
func (s *AppointmentStore) ListNewestFirst(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}
