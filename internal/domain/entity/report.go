package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportStatus gates whether a report is downloadable before payment.
type ReportStatus string

const (
	ReportStatusPendingPayment ReportStatus = "pending_payment"
	ReportStatusReady          ReportStatus = "ready"
)

// Report is a generated laudo. Title and body are assembled once at creation
// from a template and a submission; the template is not referenced afterwards,
// so later template edits never change existing reports.
type Report struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"professional_id"`
	PatientID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	TemplateID      string          `gorm:"type:varchar(50);not null" json:"template_id"`
	Title           string          `gorm:"type:varchar(255);not null" json:"title"`
	Body            string          `gorm:"type:text;not null" json:"body"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	RequiresPayment bool            `gorm:"not null;default:false" json:"requires_payment"`
	Status          ReportStatus    `gorm:"type:report_status;not null;default:'ready';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}

// IsPendingPayment checks if the report is still locked behind payment.
func (r *Report) IsPendingPayment() bool {
	return r.Status == ReportStatusPendingPayment
}

// IsReady checks if the report can be downloaded.
func (r *Report) IsReady() bool {
	return r.Status == ReportStatusReady
}

// MarkReady releases the report after payment confirmation. This is the sole
// status transition and it is never reversed.
func (r *Report) MarkReady() {
	r.Status = ReportStatusReady
}
