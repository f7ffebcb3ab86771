package appointment

import (
	"context"

	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/domain/schedule"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
	"github.com/InstitutRosalie/salon-scheduler/internal/timezone"
)

const reasonNoSlots = "Nenhum horário disponível neste dia."

type GetAvailability struct {
	repo domain.Repository
	mode string
}

func NewGetAvailability(repo domain.Repository, mode string) *GetAvailability {
	if mode != config.ScheduleModeSlots {
		mode = config.ScheduleModePeriods
	}
	return &GetAvailability{repo: repo, mode: mode}
}

// Execute calcula os créneaux ofertáveis de uma data. Duas chamadas com os
// mesmos dados de entrada produzem a mesma lista ordenada.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	day, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation(map[string]string{
			"date": "Data inválida (YYYY-MM-DD).",
		})
	}

	out := &domain.Availability{Date: in.Date, Times: []string{}}

	// reserva no mesmo dia não é permitida
	if !day.After(timezone.Today()) {
		out.Reason = reasonNoSlots
		return out, nil
	}

	prestation, err := uc.repo.GetPrestation(ctx, in.PrestationID)
	if err != nil {
		return nil, httperr.ErrBusiness("prestation_not_found")
	}
	if prestation.RequiresContact {
		out.Reason = "Esta prestation é agendada por contato direto."
		return out, nil
	}

	blocked, err := uc.repo.IsDateBlocked(ctx, in.Date)
	if err != nil {
		return nil, httperr.ErrUpstream("list blocked dates", err)
	}
	if blocked {
		out.Reason = reasonNoSlots
		return out, nil
	}

	ws, err := weeklyScheduleFor(ctx, uc.repo, uc.mode)
	if err != nil {
		return nil, err
	}

	weekday := int(day.Weekday())
	d, ok := ws.Day(weekday)
	if !ok {
		out.Reason = reasonNoSlots
		return out, nil
	}

	removed, err := blockedStarts(ctx, uc.repo, in.Date)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListBlockingAppointments(ctx, in.Date)
	if err != nil {
		return nil, httperr.ErrUpstream("list appointments", err)
	}
	occupied := domain.OccupiedFrom(existing)

	durationMin := schedule.ParseDuration(prestation.Duration)

	for _, start := range d.Starts() {
		t := schedule.ToMinutes(start)

		if removed[t] {
			continue
		}
		if !d.Fits(t, durationMin+domain.BufferMin) {
			continue
		}
		if domain.IsBlocked(t, durationMin, occupied) {
			continue
		}

		out.Times = append(out.Times, start)
	}

	if len(out.Times) == 0 {
		out.Reason = reasonNoSlots
	}

	return out, nil
}
