package repository

import (
	"context"
	"errors"

	"github.com/laudohub/laudohub-api/internal/domain/entity"
	domainRepo "github.com/laudohub/laudohub-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByProviderID(ctx context.Context, db *gorm.DB, providerID string) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.WithContext(ctx).Preload("Report").Where("provider_id = ?", providerID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByReportID(ctx context.Context, db *gorm.DB, reportID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.WithContext(ctx).Where("report_id = ?", reportID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.PaymentStatus) error {
	return db.WithContext(ctx).
		Model(&entity.Payment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
