package repository

import (
	"context"

	"github.com/laudohub/laudohub-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.Report) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Report, error)
	FindByProfessional(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Report, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.ReportStatus) error
}
