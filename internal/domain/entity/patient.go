package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient belongs to the professional's private roster. The phone number is
// stored in E.164 form and is the destination for collection messages.
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professional_id"`
	Name           string    `gorm:"type:varchar(80);not null" json:"name"`
	Phone          string    `gorm:"type:varchar(20);not null" json:"phone"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Reports []Report `gorm:"foreignKey:PatientID" json:"reports,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
