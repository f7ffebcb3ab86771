package appointment

import "github.com/InstitutRosalie/salon-scheduler/internal/models"

// ===============================
// Domain Actions
// ===============================

// Transition aplica uma mudança de status moderada pelo admin. Notas
// opcionais acompanham a transição.
func Transition(ap *models.Appointment, to Status, notes string) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	if notes != "" {
		ap.Notes = notes
	}
	return nil
}
