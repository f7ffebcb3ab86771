package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/httpresp"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

const tokenTTL = 12 * time.Hour

type AuthHandler struct {
	db        *gorm.DB
	jwtSecret string
	audit     *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, auditDispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, jwtSecret: jwtSecret, audit: auditDispatcher}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login autentica o admin provisionado pelo cmd/setup. Não existe registro
// público; credenciais inválidas e e-mail inexistente devolvem a mesma
// resposta.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "E-mail e senha obrigatórios.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": admin.ID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		httperr.Internal(c, "token_generation_failed", "Erro ao gerar o token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID: &admin.ID,
		Action:  "admin_login",
		Entity:  "admin",
	})

	httpresp.OK(c, gin.H{
		"token": signed,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}
