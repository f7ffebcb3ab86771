package httperr

import "errors"

// ValidationError carrega os erros campo a campo de uma submissão. Nenhuma
// escrita acontece quando ele é retornado.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation_failed"
}

func ErrValidation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
