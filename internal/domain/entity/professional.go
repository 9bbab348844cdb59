package entity

import (
	"time"

	"github.com/google/uuid"
)

// Professional represents an independent practitioner account.
// Every patient, report and appointment belongs to exactly one professional.
type Professional struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:ProfessionalID" json:"patients,omitempty"`
	Reports  []Report  `gorm:"foreignKey:ProfessionalID" json:"reports,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}
