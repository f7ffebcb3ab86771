package appointment

import "github.com/InstitutRosalie/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// InitialStatus é forçado na submissão, independente do que o cliente mandar.
func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Blocks informa se um agendamento neste status ocupa o créneau. Completed
// não bloqueia: só pending/accepted contam no detector de conflito.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusAccepted
}

// BlockingStatuses deriva de Blocks a lista usada nos filtros SQL e no
// índice parcial, para a regra morar num lugar só.
func BlockingStatuses() []string {
	all := []Status{StatusPending, StatusAccepted, StatusCompleted, StatusRejected, StatusCancelled}

	out := make([]string, 0, 2)
	for _, s := range all {
		if s.Blocks() {
			out = append(out, string(s))
		}
	}
	return out
}

// ===============================
// Transições
// ===============================

// Estados terminais (rejected/cancelled/completed) não voltam atrás.
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}
