package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/httpresp"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
	ucAppointment "github.com/InstitutRosalie/salon-scheduler/internal/usecase/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler é a superfície sem autenticação: catálogo, disponibilidade
// e submissão de agendamento.
type PublicHandler struct {
	db       *gorm.DB
	availUC  *ucAppointment.GetAvailability
	createUC *ucAppointment.CreateAppointment
	dev      bool
}

func NewPublicHandler(
	db *gorm.DB,
	availUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateAppointment,
	dev bool,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		availUC:  availUC,
		createUC: createUC,
		dev:      dev,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type SubmitAppointmentRequest struct {
	ClientName   string `json:"client_name" binding:"required"`
	ClientEmail  string `json:"client_email" binding:"required"`
	ClientPhone  string `json:"client_phone"`
	PrestationID string `json:"prestation_id" binding:"required"`
	Date         string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"appointment_time" binding:"required"` // HH:mm
	Notes        string `json:"notes"`
}

////////////////////////////////////////////////////////
// PRESTATIONS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListPrestations(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var prestations []models.Prestation
	if err := q.
		Order("display_order ASC, name ASC").
		Find(&prestations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_prestations", "Erro ao listar prestations.")
		return
	}

	httpresp.OK(c, gin.H{"prestations": prestations})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAvailableTimes(c *gin.Context) {
	dateStr := c.Query("date")
	prestationID := c.Query("prestation_id")

	if dateStr == "" || prestationID == "" {
		httperr.BadRequest(c, "missing_params", "Data e prestation obrigatórias.")
		return
	}

	availability, err := h.availUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:         dateStr,
			PrestationID: prestationID,
		},
	)
	if err != nil {
		httperr.Handle(c, err, h.dev)
		return
	}

	httpresp.OK(c, availability)
}

////////////////////////////////////////////////////////
// SUBMIT APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) SubmitAppointment(c *gin.Context) {
	var req SubmitAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// checagem de entregabilidade do domínio, desligada em dev
	if !h.dev {
		email := strings.ToLower(strings.TrimSpace(req.ClientEmail))
		if strings.Contains(email, "@") && !validators.IsEmailDomainValid(email) {
			httperr.Handle(c, httperr.ErrValidation(map[string]string{
				"client_email": "Domínio de e-mail inexistente.",
			}), h.dev)
			return
		}
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientName:   req.ClientName,
			ClientEmail:  req.ClientEmail,
			ClientPhone:  req.ClientPhone,
			PrestationID: req.PrestationID,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,
		},
	)
	if err != nil {
		httperr.Handle(c, err, h.dev)
		return
	}

	httpresp.Created(c, gin.H{"appointment": ap})
}
