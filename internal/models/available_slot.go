package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableSlot é o modelo alternativo de agenda: um créneau fixo pré-definido
// (tipicamente 1h30) por registro, sem subdivisão por duração de prestation.
// Quando a instalação usa esse modelo, ele tem precedência sobre os períodos
// de OpeningHours.
type AvailableSlot struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DayOfWeek int    `gorm:"index" json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AvailableSlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
