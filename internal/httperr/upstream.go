package httperr

import (
	"errors"
	"fmt"
)

// UpstreamError embrulha uma falha do storage. O detalhe cru só aparece na
// resposta em modo dev; nada é retentado automaticamente, um insert de
// agendamento não é idempotente sem chave de dedup.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream_unavailable: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func ErrUpstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
