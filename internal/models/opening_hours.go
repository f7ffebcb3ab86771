package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpeningHours guarda o expediente recorrente de um dia da semana como texto
// ("9h-13h | 14h-19h"). No máximo um registro ativo por weekday é relevante;
// sem registro, o dia é considerado fechado.
type OpeningHours struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// 0=domingo .. 6=sábado
	DayOfWeek int `gorm:"index" json:"day_of_week"`

	Periods         string `gorm:"size:100" json:"periods"`
	LastAppointment string `gorm:"size:10" json:"last_appointment"`

	IsActive     bool `gorm:"default:true" json:"is_active"`
	DisplayOrder int  `json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *OpeningHours) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

func (OpeningHours) TableName() string {
	return "opening_hours"
}
