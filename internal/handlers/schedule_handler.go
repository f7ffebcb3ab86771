package handlers

import (

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	"github.com/InstitutRosalie/salon-scheduler/internal/domain/schedule"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/httpresp"
	"github.com/InstitutRosalie/salon-scheduler/internal/middleware"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
	"github.com/InstitutRosalie/salon-scheduler/internal/validators"
)

// ScheduleHandler administra o expediente recorrente (períodos por dia da
// semana) e os créneaux fixos. O PUT substitui a semana inteira de uma vez:
// apaga e recria, como o frontend de administração envia a grade completa.
type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewScheduleHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: auditDispatcher}
}

type OpeningHoursDayRequest struct {
	DayOfWeek       int    `json:"day_of_week"`
	Periods         string `json:"periods" binding:"required"`
	LastAppointment string `json:"last_appointment"`
	IsActive        *bool  `json:"is_active"`
}

type AvailableSlotRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"`
	IsActive  *bool  `json:"is_active"`
}

func (h *ScheduleHandler) ListOpeningHours(c *gin.Context) {
	var hours []models.OpeningHours
	if err := h.db.
		Order("day_of_week ASC, display_order ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_opening_hours", "Erro ao listar o expediente.")
		return
	}

	httpresp.OK(c, hours)
}

func (h *ScheduleHandler) ReplaceOpeningHours(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req []OpeningHoursDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, day := range req {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			httperr.BadRequest(c, "invalid_day_of_week", "day_of_week deve estar entre 0 e 6.")
			return
		}
		if len(schedule.ParsePeriodRanges(day.Periods)) == 0 {
			httperr.BadRequest(c, "invalid_periods", "Formato de períodos inválido (ex: \"9h-13h | 14h-19h\").")
			return
		}
		if day.LastAppointment != "" && !validators.IsTimeFormatValid(day.LastAppointment) {
			httperr.BadRequest(c, "invalid_last_appointment", "last_appointment deve ser HH:MM.")
			return
		}
	}

	rows := make([]models.OpeningHours, 0, len(req))
	for i, day := range req {
		active := true
		if day.IsActive != nil {
			active = *day.IsActive
		}
		rows = append(rows, models.OpeningHours{
			DayOfWeek:       day.DayOfWeek,
			Periods:         day.Periods,
			LastAppointment: day.LastAppointment,
			IsActive:        active,
			DisplayOrder:    i,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.OpeningHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_opening_hours", "Erro ao salvar o expediente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID: &adminID,
		Action:  "opening_hours_replaced",
		Entity:  "opening_hours",
		Metadata: map[string]any{
			"days": len(rows),
		},
	})

	httpresp.OK(c, rows)
}

func (h *ScheduleHandler) ListAvailableSlots(c *gin.Context) {
	var slots []models.AvailableSlot
	if err := h.db.
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_available_slots", "Erro ao listar os créneaux.")
		return
	}

	httpresp.OK(c, slots)
}

func (h *ScheduleHandler) ReplaceAvailableSlots(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req []AvailableSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, slot := range req {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			httperr.BadRequest(c, "invalid_day_of_week", "day_of_week deve estar entre 0 e 6.")
			return
		}
		if !validators.IsTimeFormatValid(slot.StartTime) {
			httperr.BadRequest(c, "invalid_start_time", "start_time deve ser HH:MM.")
			return
		}
		if slot.EndTime != "" && !validators.IsTimeFormatValid(slot.EndTime) {
			httperr.BadRequest(c, "invalid_end_time", "end_time deve ser HH:MM.")
			return
		}
	}

	rows := make([]models.AvailableSlot, 0, len(req))
	for _, slot := range req {
		active := true
		if slot.IsActive != nil {
			active = *slot.IsActive
		}
		rows = append(rows, models.AvailableSlot{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsActive:  active,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AvailableSlot{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_available_slots", "Erro ao salvar os créneaux.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID: &adminID,
		Action:  "available_slots_replaced",
		Entity:  "available_slot",
		Metadata: map[string]any{
			"slots": len(rows),
		},
	})

	httpresp.OK(c, rows)
}
