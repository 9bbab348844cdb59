package repository

import (
	"context"
	"errors"

	"github.com/laudohub/laudohub-api/internal/domain/entity"
	domainRepo "github.com/laudohub/laudohub-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.Report) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Report, error) {
	var report entity.Report
	err := db.WithContext(ctx).Preload("Patient").Where("id = ?", id).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindByProfessional(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Report, error) {
	var reports []entity.Report
	err := db.WithContext(ctx).
		Preload("Patient").
		Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.ReportStatus) error {
	return db.WithContext(ctx).
		Model(&entity.Report{}).
		Where("id = ?", id).
		Update("status", status).Error
}
