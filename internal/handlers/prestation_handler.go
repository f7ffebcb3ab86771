package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/httpresp"
	"github.com/InstitutRosalie/salon-scheduler/internal/images"
	"github.com/InstitutRosalie/salon-scheduler/internal/middleware"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
	"github.com/InstitutRosalie/salon-scheduler/internal/storage"
)

const maxPhotoBytes = 8 << 20 // 8 MiB

type PrestationHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewPrestationHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	auditDispatcher *audit.Dispatcher,
) *PrestationHandler {
	return &PrestationHandler{
		db:       db,
		uploader: uploader,
		audit:    auditDispatcher,
	}
}

type PrestationRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Duration        string  `json:"duration"`
	Price           float64 `json:"price"`
	RequiresContact bool    `json:"requires_contact"`
	Active          *bool   `json:"active"`
	DisplayOrder    int     `json:"display_order"`
}

func (h *PrestationHandler) List(c *gin.Context) {
	var prestations []models.Prestation
	if err := h.db.
		Order("display_order ASC, name ASC").
		Find(&prestations).Error; err != nil {
		httperr.Internal(c, "failed_to_list_prestations", "Erro ao listar prestations.")
		return
	}

	httpresp.OK(c, prestations)
}

func (h *PrestationHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)

	var req PrestationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	prestation := models.Prestation{
		Name:            req.Name,
		Description:     req.Description,
		Duration:        req.Duration,
		Price:           req.Price,
		RequiresContact: req.RequiresContact,
		Active:          active,
		DisplayOrder:    req.DisplayOrder,
	}

	if err := h.db.Create(&prestation).Error; err != nil {
		httperr.Internal(c, "failed_to_create_prestation", "Erro ao criar prestation.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "prestation_created",
		Entity:   "prestation",
		EntityID: &prestation.ID,
	})

	httpresp.Created(c, prestation)
}

func (h *PrestationHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	var prestation models.Prestation
	if err := h.db.Where("id = ?", id).First(&prestation).Error; err != nil {
		httperr.NotFound(c, "prestation_not_found", "Prestation não encontrada.")
		return
	}

	var req PrestationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	prestation.Name = req.Name
	prestation.Description = req.Description
	prestation.Duration = req.Duration
	prestation.Price = req.Price
	prestation.RequiresContact = req.RequiresContact
	prestation.DisplayOrder = req.DisplayOrder
	if req.Active != nil {
		prestation.Active = *req.Active
	}

	if err := h.db.Save(&prestation).Error; err != nil {
		httperr.Internal(c, "failed_to_update_prestation", "Erro ao atualizar prestation.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "prestation_updated",
		Entity:   "prestation",
		EntityID: &prestation.ID,
	})

	httpresp.OK(c, prestation)
}

// UploadPhoto converte a imagem enviada para webp e publica no bucket.
func (h *PrestationHandler) UploadPhoto(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(string)
	id := c.Param("id")

	if h.uploader == nil {
		httperr.Unavailable(c, "uploads_disabled", "Upload de fotos não está configurado.")
		return
	}

	var prestation models.Prestation
	if err := h.db.Where("id = ?", id).First(&prestation).Error; err != nil {
		httperr.NotFound(c, "prestation_not_found", "Prestation não encontrada.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo 'photo' obrigatório.")
		return
	}
	defer file.Close()

	converted, err := images.ToWebP(http.MaxBytesReader(c.Writer, file, maxPhotoBytes))
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (jpeg ou png).")
		return
	}

	key := fmt.Sprintf("prestations/%s/%s.webp", prestation.ID, uuid.New().String())
	url, err := h.uploader.Upload(c.Request.Context(), key, converted, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao publicar a foto.")
		return
	}

	prestation.ImageURL = url
	if err := h.db.Save(&prestation).Error; err != nil {
		httperr.Internal(c, "failed_to_update_prestation", "Erro ao salvar a foto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "prestation_photo_uploaded",
		Entity:   "prestation",
		EntityID: &prestation.ID,
	})

	httpresp.OK(c, gin.H{"image_url": url})
}
