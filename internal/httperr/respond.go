package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handle mapeia os erros tipados do core para HTTP. dev habilita o detalhe
// cru de falhas do storage na resposta.
func Handle(c *gin.Context, err error, dev bool) {
	if ve, ok := AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_failed",
			Message: "Dados inválidos.",
			Details: ve.Fields,
		})
		return
	}

	if ce, ok := AsConflict(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error_code":       "slot_already_reserved",
			"message":          "Este horário acabou de ser reservado.",
			"conflicting_time": ce.ConflictingTime,
			"blocked_until":    ce.BlockedUntil,
		})
		return
	}

	if ue, ok := AsUpstream(err); ok {
		resp := HTTPError{
			Code:    "upstream_unavailable",
			Message: "Serviço temporariamente indisponível.",
		}
		if dev {
			resp.Details = ue.Error()
		}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "prestation_not_found", "appointment_not_found":
			NotFound(c, be.Code, "Registro não encontrado.")
		case "schedule_unavailable":
			NotFound(c, be.Code, "Nenhum horário disponível neste dia.")
		default:
			BadRequest(c, be.Code, "Operação inválida.")
		}
		return
	}

	resp := HTTPError{
		Code:    "internal_error",
		Message: "Erro interno.",
	}
	if dev && err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
