package repository

import (
	"context"
	"time"

	"github.com/laudohub/laudohub-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByProfessional(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error)
	FindByProfessionalBetween(ctx context.Context, db *gorm.DB, professionalID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
