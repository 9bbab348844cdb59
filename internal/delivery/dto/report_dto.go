package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateReportRequest is the fixed envelope of a submission; Fields carries
// the template-specific values and is validated against the derived schema,
// not by struct tags.
type CreateReportRequest struct {
	TemplateID      string          `json:"template_id" validate:"required"`
	PatientID       string          `json:"patient_id" validate:"required"`
	RequiresPayment bool            `json:"requires_payment"`
	Price           decimal.Decimal `json:"price"`
	Fields          map[string]any  `json:"fields"`
}

type CollectPaymentRequest struct {
	// Optional override; defaults to the patient's registered phone.
	Phone string `json:"phone" validate:"omitempty,e164"`
}

type PaymentWebhookRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=paid failed"`
}

// Response DTOs

type ReportResponse struct {
	ID              uuid.UUID        `json:"id"`
	ProfessionalID  uuid.UUID        `json:"professional_id"`
	PatientID       uuid.UUID        `json:"patient_id"`
	TemplateID      string           `json:"template_id"`
	Title           string           `json:"title"`
	Body            string           `json:"body"`
	Price           decimal.Decimal  `json:"price"`
	RequiresPayment bool             `json:"requires_payment"`
	Status          string           `json:"status"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CreateReportResponse struct {
	Report      ReportResponse `json:"report"`
	CheckoutURL string         `json:"checkout_url,omitempty"`
	Warning     string         `json:"warning,omitempty"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
