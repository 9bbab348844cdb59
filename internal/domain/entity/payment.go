package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a checkout with the payment provider.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment tracks one checkout created for a report that requires payment.
// ProviderID is the identifier the external provider echoes back on webhooks.
type Payment struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReportID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"report_id"`
	ProviderID string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"provider_id"`
	Status     PaymentStatus   `gorm:"type:payment_status;not null;default:'pending';index" json:"status"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Report Report `gorm:"foreignKey:ReportID" json:"report,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsPending checks if the checkout is still awaiting confirmation.
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// MarkPaid records a confirmed payment.
func (p *Payment) MarkPaid() {
	p.Status = PaymentStatusPaid
}

// MarkFailed records a failed or refused checkout.
func (p *Payment) MarkFailed() {
	p.Status = PaymentStatusFailed
}
