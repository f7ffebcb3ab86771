package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedSlot remove um único créneau de uma data específica, independente do
// expediente semanal recorrente.
type BlockedSlot struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// YYYY-MM-DD
	BlockedDate string `gorm:"size:10;index;not null" json:"blocked_date"`
	// HH:MM
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BlockedSlot) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
