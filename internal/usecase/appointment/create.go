package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/InstitutRosalie/salon-scheduler/internal/audit"
	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/domain/schedule"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/lock"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
	"github.com/InstitutRosalie/salon-scheduler/internal/timezone"
	"github.com/InstitutRosalie/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	PrestationID string

	// YYYY-MM-DD / HH:MM
	Date string
	Time string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment é o caminho de escrita: valida, sanitiza, re-checa
// conflito contra dados frescos e persiste como pending. O re-check é a
// última leitura antes do insert; o lock (quando configurado) e o índice
// único do banco fecham a corrida que o pre-check não cobre.
type CreateAppointment struct {
	repo   domain.Repository
	mode   string
	locker lock.Locker
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	mode string,
	locker lock.Locker,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		mode:   mode,
		locker: locker,
		audit:  auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Sanitização
	// --------------------------------------------------
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.ToLower(strings.TrimSpace(in.ClientEmail))
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.PrestationID = strings.TrimSpace(in.PrestationID)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Notes = strings.TrimSpace(in.Notes)

	// --------------------------------------------------
	// 2. Validação (nenhum acesso ao storage antes daqui)
	// --------------------------------------------------
	fieldErrs := validators.ValidateAppointment(validators.AppointmentFields{
		ClientName:   in.ClientName,
		ClientEmail:  in.ClientEmail,
		ClientPhone:  in.ClientPhone,
		PrestationID: in.PrestationID,
		Date:         in.Date,
		Time:         in.Time,
		Notes:        in.Notes,
	}, timezone.Today())
	if len(fieldErrs) > 0 {
		return nil, httperr.ErrValidation(fieldErrs)
	}

	// --------------------------------------------------
	// 3. Prestation
	// --------------------------------------------------
	prestation, err := uc.repo.GetPrestation(ctx, in.PrestationID)
	if err != nil {
		return nil, httperr.ErrBusiness("prestation_not_found")
	}
	if prestation.RequiresContact {
		return nil, httperr.ErrBusiness("prestation_requires_contact")
	}

	durationMin := schedule.ParseDuration(prestation.Duration)
	startMin := schedule.ToMinutes(in.Time)

	// forma canônica HH:MM: "9:15" e "09:15" são o mesmo créneau e precisam
	// produzir a mesma chave no lock e no índice único
	in.Time = schedule.FormatMinutes(startMin)

	// --------------------------------------------------
	// 4. O créneau pedido existe na agenda do dia?
	// --------------------------------------------------
	if err := uc.checkSchedule(ctx, in.Date, startMin, durationMin); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Lock do créneau (opcional)
	// --------------------------------------------------
	if uc.locker != nil {
		key := fmt.Sprintf("booking:%s:%s", in.Date, in.Time)

		ok, err := uc.locker.Lock(ctx, key, 10*time.Second)
		if err != nil {
			return nil, httperr.ErrUpstream("acquire slot lock", err)
		}
		if !ok {
			// outra submissão está no meio do commit deste créneau
			return nil, httperr.ErrConflict(in.Time, in.Time)
		}
		defer func() {
			_ = uc.locker.Unlock(ctx, key)
		}()
	}

	// --------------------------------------------------
	// 6. Re-check de conflito contra dados frescos: a última leitura
	//    antes do insert.
	// --------------------------------------------------
	existing, err := uc.repo.ListBlockingAppointments(ctx, in.Date)
	if err != nil {
		return nil, httperr.ErrUpstream("list appointments", err)
	}

	if win, blocked := domain.BlockingWindow(startMin, durationMin, domain.OccupiedFrom(existing)); blocked {
		return nil, httperr.ErrConflict(
			schedule.FormatMinutes(win.StartMin),
			schedule.FormatMinutes(win.BlockedUntil()),
		)
	}

	// --------------------------------------------------
	// 7. Persistência (status sempre pending)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		PrestationID:    prestation.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// índice único do banco: duas submissões passaram pelo pre-check
		if httperr.IsBusiness(err, "slot_taken") {
			return nil, httperr.ErrConflict(in.Time, in.Time)
		}
		return nil, httperr.ErrUpstream("insert appointment", err)
	}

	// --------------------------------------------------
	// 8. Auditoria
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_requested",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}

// checkSchedule confirma que o créneau pedido ainda faz parte da oferta do
// dia: data não bloqueada, agenda ativa no weekday, início previsto e não
// removido pelo admin, duração+buffer cabendo no período.
func (uc *CreateAppointment) checkSchedule(
	ctx context.Context,
	date string,
	startMin int,
	durationMin int,
) error {

	blocked, err := uc.repo.IsDateBlocked(ctx, date)
	if err != nil {
		return httperr.ErrUpstream("list blocked dates", err)
	}
	if blocked {
		return httperr.ErrBusiness("schedule_unavailable")
	}

	ws, err := weeklyScheduleFor(ctx, uc.repo, uc.mode)
	if err != nil {
		return err
	}

	day, err := timezone.ParseDate(date)
	if err != nil {
		return httperr.ErrBusiness("schedule_unavailable")
	}

	d, ok := ws.Day(int(day.Weekday()))
	if !ok {
		return httperr.ErrBusiness("schedule_unavailable")
	}

	offered := false
	for _, s := range d.Starts() {
		if schedule.ToMinutes(s) == startMin {
			offered = true
			break
		}
	}
	if !offered || !d.Fits(startMin, durationMin+domain.BufferMin) {
		return httperr.ErrBusiness("outside_schedule")
	}

	removed, err := blockedStarts(ctx, uc.repo, date)
	if err != nil {
		return err
	}
	if removed[startMin] {
		return httperr.ErrBusiness("outside_schedule")
	}

	return nil
}
