package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentType classifies what the visit is for.
type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeExam         AppointmentType = "exam"
	AppointmentTypeProcedure    AppointmentType = "procedure"
	AppointmentTypeFollowup     AppointmentType = "followup"
)

// Appointment is a calendar entry for a patient visit.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID uuid.UUID         `gorm:"type:uuid;not null;index" json:"professional_id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	Title          string            `gorm:"type:varchar(255);not null" json:"title"`
	Description    string            `gorm:"type:text" json:"description,omitempty"`
	StartTime      time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime        time.Time         `gorm:"not null" json:"end_time"`
	Status         AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Type           AppointmentType   `gorm:"type:appointment_type;not null" json:"type"`
	WhatsappSent   bool              `gorm:"not null;default:false" json:"whatsapp_sent"`
	ReminderSent   bool              `gorm:"not null;default:false" json:"reminder_sent"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment was called off.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// MarkReminderSent records that a reminder message went out.
func (a *Appointment) MarkReminderSent() {
	a.ReminderSent = true
	a.WhatsappSent = true
}
