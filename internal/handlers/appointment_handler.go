package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/httpresp"
	"github.com/InstitutRosalie/salon-scheduler/internal/middleware"
	"github.com/InstitutRosalie/salon-scheduler/internal/timezone"
	ucAppointment "github.com/InstitutRosalie/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler é o lado admin: listagens e moderação de status.
type AppointmentHandler struct {
	listByDateUC   *ucAppointment.ListByDate
	listByMonthUC  *ucAppointment.ListByMonth
	updateStatusUC *ucAppointment.UpdateStatus
	dev            bool
}

func NewAppointmentHandler(
	listByDateUC *ucAppointment.ListByDate,
	listByMonthUC *ucAppointment.ListByMonth,
	updateStatusUC *ucAppointment.UpdateStatus,
	dev bool,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		updateStatusUC: updateStatusUC,
		dev:            dev,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	if _, err := timezone.ParseDate(dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Handle(c, err, h.dev)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_month", "Ano e mês obrigatórios.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Handle(c, err, h.dev)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATUS (moderação)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		adminID,
		id,
		domain.Status(req.Status),
		req.Notes,
	)
	if err != nil {
		httperr.Handle(c, err, h.dev)
		return
	}

	httpresp.OK(c, ap)
}
