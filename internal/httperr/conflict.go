package httperr

import (
	"errors"
	"fmt"
)

// ConflictError indica que o créneau pedido não está mais livre no momento do
// commit. Carrega o horário conflitante e até quando a janela fica bloqueada,
// para o cliente recarregar as alternativas.
type ConflictError struct {
	ConflictingTime string
	BlockedUntil    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot_already_reserved: %s (bloqueado até %s)", e.ConflictingTime, e.BlockedUntil)
}

func ErrConflict(conflictingTime, blockedUntil string) error {
	return &ConflictError{
		ConflictingTime: conflictingTime,
		BlockedUntil:    blockedUntil,
	}
}

func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
