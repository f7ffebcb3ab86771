package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedDate marca um dia inteiro como indisponível (feriado, férias).
type BlockedDate struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// YYYY-MM-DD
	Date   string `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BlockedDate) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
