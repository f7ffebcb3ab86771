package appointment

import (
	"context"

	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Prestation --------
	GetPrestation(
		ctx context.Context,
		id string,
	) (*models.Prestation, error)

	// -------- Agenda --------
	ListOpeningHours(
		ctx context.Context,
		activeOnly bool,
	) ([]models.OpeningHours, error)

	ListAvailableSlots(
		ctx context.Context,
		activeOnly bool,
	) ([]models.AvailableSlot, error)

	// -------- Bloqueios --------
	IsDateBlocked(
		ctx context.Context,
		date string,
	) (bool, error)

	ListBlockedDates(
		ctx context.Context,
		fromDate string,
	) ([]models.BlockedDate, error)

	ListBlockedSlots(
		ctx context.Context,
		date string,
	) ([]models.BlockedSlot, error)

	// -------- Appointment (leitura) --------
	// ListBlockingAppointments retorna só pending/accepted da data, com a
	// prestation carregada para resolver a duração.
	ListBlockingAppointments(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByMonth(
		ctx context.Context,
		year int,
		month int,
	) ([]models.Appointment, error)

	// -------- Appointment (escrita) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
