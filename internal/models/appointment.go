package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment nunca é apagado: o ciclo de vida é só transição de status.
// Apenas pending/accepted ocupam o créneau.
type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:255;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	PrestationID string     `gorm:"type:uuid;index" json:"prestation_id"`
	Prestation   Prestation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"prestation"`

	// YYYY-MM-DD / HH:MM
	AppointmentDate string `gorm:"size:10;index;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
