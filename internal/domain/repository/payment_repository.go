package repository

import (
	"context"

	"github.com/laudohub/laudohub-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, db *gorm.DB, payment *entity.Payment) error
	FindByProviderID(ctx context.Context, db *gorm.DB, providerID string) (*entity.Payment, error)
	FindByReportID(ctx context.Context, db *gorm.DB, reportID uuid.UUID) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.PaymentStatus) error
}
