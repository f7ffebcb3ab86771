package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prestation é uma oferta de serviço do catálogo. A duração fica em texto
// livre ("1h30", "45 min") e é convertida em minutos pelo scheduler.
type Prestation struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Duration    string  `gorm:"size:20" json:"duration"`
	Price       float64 `json:"price"`

	RequiresContact bool `gorm:"default:false" json:"requires_contact"`
	Active          bool `gorm:"default:true" json:"active"`

	ImageURL     string `gorm:"size:255" json:"image_url"`
	DisplayOrder int    `json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Prestation) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
