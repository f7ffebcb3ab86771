package handlers

import (

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/httpresp"
	"github.com/InstitutRosalie/salon-scheduler/internal/middleware"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
	"github.com/InstitutRosalie/salon-scheduler/internal/timezone"
	"github.com/InstitutRosalie/salon-scheduler/internal/validators"
)

// BlockedHandler administra as exceções pontuais da agenda: dias inteiros
// bloqueados (feriados, férias) e créneaux isolados retirados de uma data.
type BlockedHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBlockedHandler(
	db *gorm.DB,
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *BlockedHandler {
	return &BlockedHandler{db: db, repo: repo, audit: auditDispatcher}
}

type BlockedDateRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type BlockedSlotRequest struct {
	BlockedDate string `json:"blocked_date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	Reason      string `json:"reason"`
}

func (h *BlockedHandler) ListBlockedDates(c *gin.Context) {
	today := timezone.Today().Format("2006-01-02")

	dates, err := h.repo.ListBlockedDates(c.Request.Context(), today)
	if err != nil {
		httperr.Internal(c, "failed_to_list_blocked_dates", "Erro ao listar os dias bloqueados.")
		return
	}

	httpresp.OK(c, dates)
}

func (h *BlockedHandler) CreateBlockedDate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req BlockedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !validators.IsDateFormatValid(req.Date) {
		httperr.BadRequest(c, "invalid_date", "date deve ser YYYY-MM-DD.")
		return
	}

	blocked := models.BlockedDate{Date: req.Date, Reason: req.Reason}
	if err := h.db.Create(&blocked).Error; err != nil {
		// índice único em date: bloqueio repetido do mesmo dia
		httperr.Conflict(c, "date_already_blocked", "Este dia já está bloqueado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "date_blocked",
		Entity:   "blocked_date",
		EntityID: &blocked.ID,
		Metadata: map[string]any{"date": blocked.Date},
	})

	httpresp.Created(c, blocked)
}

func (h *BlockedHandler) DeleteBlockedDate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var blocked models.BlockedDate
	if err := h.db.Where("id = ?", id).First(&blocked).Error; err != nil {
		httperr.NotFound(c, "blocked_date_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.db.Delete(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_blocked_date", "Erro ao remover o bloqueio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "date_unblocked",
		Entity:   "blocked_date",
		EntityID: &blocked.ID,
		Metadata: map[string]any{"date": blocked.Date},
	})

	httpresp.OK(c, gin.H{"message": "Bloqueio removido."})
}

func (h *BlockedHandler) ListBlockedSlots(c *gin.Context) {
	query := h.db.Order("blocked_date ASC, start_time ASC")

	if date := c.Query("date"); date != "" {
		if !validators.IsDateFormatValid(date) {
			httperr.BadRequest(c, "invalid_date", "date deve ser YYYY-MM-DD.")
			return
		}
		query = query.Where("blocked_date = ?", date)
	} else {
		today := timezone.Today().Format("2006-01-02")
		query = query.Where("blocked_date >= ?", today)
	}

	var slots []models.BlockedSlot
	if err := query.Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocked_slots", "Erro ao listar os créneaux bloqueados.")
		return
	}

	httpresp.OK(c, slots)
}

func (h *BlockedHandler) CreateBlockedSlot(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req BlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !validators.IsDateFormatValid(req.BlockedDate) {
		httperr.BadRequest(c, "invalid_date", "blocked_date deve ser YYYY-MM-DD.")
		return
	}
	if !validators.IsTimeFormatValid(req.StartTime) {
		httperr.BadRequest(c, "invalid_start_time", "start_time deve ser HH:MM.")
		return
	}

	blocked := models.BlockedSlot{
		BlockedDate: req.BlockedDate,
		StartTime:   req.StartTime,
		Reason:      req.Reason,
	}
	if err := h.db.Create(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_slot", "Erro ao bloquear o créneau.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "slot_blocked",
		Entity:   "blocked_slot",
		EntityID: &blocked.ID,
		Metadata: map[string]any{
			"date": blocked.BlockedDate,
			"time": blocked.StartTime,
		},
	})

	httpresp.Created(c, blocked)
}

func (h *BlockedHandler) DeleteBlockedSlot(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var blocked models.BlockedSlot
	if err := h.db.Where("id = ?", id).First(&blocked).Error; err != nil {
		httperr.NotFound(c, "blocked_slot_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.db.Delete(&blocked).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_blocked_slot", "Erro ao remover o bloqueio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "slot_unblocked",
		Entity:   "blocked_slot",
		EntityID: &blocked.ID,
		Metadata: map[string]any{
			"date": blocked.BlockedDate,
			"time": blocked.StartTime,
		},
	})

	httpresp.OK(c, gin.H{"message": "Bloqueio removido."})
}
