package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Prestation
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPrestation(
	ctx context.Context,
	id string,
) (*models.Prestation, error) {

	var prestation models.Prestation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&prestation).Error; err != nil {
		return nil, err
	}
	return &prestation, nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOpeningHours(
	ctx context.Context,
	activeOnly bool,
) ([]models.OpeningHours, error) {

	q := r.db.WithContext(ctx).Order("day_of_week ASC, display_order ASC")
	if activeOnly {
		q = q.Where("is_active = true")
	}

	var rows []models.OpeningHours
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) ListAvailableSlots(
	ctx context.Context,
	activeOnly bool,
) ([]models.AvailableSlot, error) {

	q := r.db.WithContext(ctx).Order("day_of_week ASC, start_time ASC")
	if activeOnly {
		q = q.Where("is_active = true")
	}

	var rows []models.AvailableSlot
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Bloqueios
// --------------------------------------------------

func (r *AppointmentGormRepository) IsDateBlocked(
	ctx context.Context,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlockedDate{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) ListBlockedDates(
	ctx context.Context,
	fromDate string,
) ([]models.BlockedDate, error) {

	var rows []models.BlockedDate
	if err := r.db.WithContext(ctx).
		Where("date >= ?", fromDate).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) ListBlockedSlots(
	ctx context.Context,
	date string,
) ([]models.BlockedSlot, error) {

	var rows []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("blocked_date = ?", date).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Appointment (leitura)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBlockingAppointments(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Prestation").
		Where(
			"appointment_date = ? AND status IN ?",
			date,
			domain.BlockingStatuses(),
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Prestation").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Prestation").
		Where("appointment_date = ?", date).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByMonth(
	ctx context.Context,
	year int,
	month int,
) ([]models.Appointment, error) {

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Prestation").
		Where("appointment_date LIKE ?", prefix).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (escrita)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// idx_no_double_booking: outra submissão ganhou a corrida
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
