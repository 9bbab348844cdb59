package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=consultation exam procedure followup"`
}

type UpdateAppointmentRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	PatientID    uuid.UUID        `json:"patient_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description,omitempty"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      time.Time        `json:"end_time"`
	Status       string           `json:"status"`
	Type         string           `json:"type"`
	WhatsappSent bool             `json:"whatsapp_sent"`
	ReminderSent bool             `json:"reminder_sent"`
	Patient      *PatientResponse `json:"patient,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type TimeSlotResponse struct {
	Time        string               `json:"time"`
	Available   bool                 `json:"available"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

type DaySlotsResponse struct {
	Date  string             `json:"date"`
	Slots []TimeSlotResponse `json:"slots"`
}

type CalendarDayResponse struct {
	Date           string                `json:"date"`
	DayOfWeek      string                `json:"day_of_week"`
	IsToday        bool                  `json:"is_today"`
	Appointments   []AppointmentResponse `json:"appointments"`
	AvailableSlots int                   `json:"available_slots"`
}

type CalendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}
