package validators

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	// letras (acentos inclusos), espaços, hífens e apóstrofos
	reClientName = regexp.MustCompile(`^[\p{L}]['\p{L} \-]{1,99}$`)

	reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// fixo ou móvel francês: 0X ou +33X seguido de 8 dígitos, separadores opcionais
	rePhoneFR = regexp.MustCompile(`^(?:\+33\s?|0)[1-9](?:[\s.\-]?\d{2}){4}$`)

	reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reTime = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
)

// IsDateFormatValid aceita apenas YYYY-MM-DD.
func IsDateFormatValid(s string) bool {
	return reDate.MatchString(s)
}

// IsTimeFormatValid aceita apenas HH:MM (24h).
func IsTimeFormatValid(s string) bool {
	return reTime.MatchString(s)
}

type AppointmentFields struct {
	ClientName   string
	ClientEmail  string
	ClientPhone  string
	PrestationID string
	Date         string
	Time         string
	Notes        string
}

// ValidateAppointment devolve os erros campo a campo de uma submissão já
// sanitizada. Mapa vazio = submissão válida. Nenhum acesso ao storage
// acontece aqui.
func ValidateAppointment(f AppointmentFields, today time.Time) map[string]string {
	errs := make(map[string]string)

	if f.ClientName == "" {
		errs["client_name"] = "Nome obrigatório."
	} else if !reClientName.MatchString(f.ClientName) {
		errs["client_name"] = "Nome inválido (2 a 100 caracteres, letras, espaços, hífens e apóstrofos)."
	}

	if f.ClientEmail == "" {
		errs["client_email"] = "E-mail obrigatório."
	} else if len(f.ClientEmail) > 255 || !reEmail.MatchString(f.ClientEmail) {
		errs["client_email"] = "E-mail inválido."
	}

	if f.ClientPhone != "" {
		if len(f.ClientPhone) > 20 || !rePhoneFR.MatchString(f.ClientPhone) {
			errs["client_phone"] = "Telefone inválido (formato francês)."
		}
	}

	if _, err := uuid.Parse(f.PrestationID); err != nil {
		errs["prestation_id"] = "Prestation inválida."
	}

	if !reDate.MatchString(f.Date) {
		errs["appointment_date"] = "Data inválida (YYYY-MM-DD)."
	} else if d, err := time.ParseInLocation("2006-01-02", f.Date, today.Location()); err != nil {
		errs["appointment_date"] = "Data inválida (YYYY-MM-DD)."
	} else if !d.After(today) {
		// reserva no mesmo dia não é permitida
		errs["appointment_date"] = "A data deve ser futura."
	}

	if !reTime.MatchString(f.Time) {
		errs["appointment_time"] = "Horário inválido (HH:MM)."
	}

	if len(f.Notes) > 500 {
		errs["notes"] = "Notas limitadas a 500 caracteres."
	}

	return errs
}
