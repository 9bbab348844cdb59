package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=80"`
	Phone string `json:"phone" validate:"required,e164"`
}

type UpdatePatientRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=80"`
	Phone string `json:"phone" validate:"required,e164"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
