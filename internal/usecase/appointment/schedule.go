package appointment

import (
	"context"

	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	domain "github.com/InstitutRosalie/salon-scheduler/internal/domain/appointment"
	"github.com/InstitutRosalie/salon-scheduler/internal/domain/schedule"
	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
)

// weeklyScheduleFor carrega a agenda canônica no modo configurado da
// instalação: períodos de OpeningHours ou AvailableSlots explícitos.
func weeklyScheduleFor(
	ctx context.Context,
	repo domain.Repository,
	mode string,
) (schedule.WeeklySchedule, error) {

	if mode == config.ScheduleModeSlots {
		rows, err := repo.ListAvailableSlots(ctx, true)
		if err != nil {
			return schedule.WeeklySchedule{}, httperr.ErrUpstream("list available slots", err)
		}
		return schedule.FromAvailableSlots(rows), nil
	}

	rows, err := repo.ListOpeningHours(ctx, true)
	if err != nil {
		return schedule.WeeklySchedule{}, httperr.ErrUpstream("list opening hours", err)
	}
	return schedule.FromOpeningHours(rows), nil
}

// blockedStarts devolve os inícios bloqueados pelo admin na data, em minutos.
func blockedStarts(
	ctx context.Context,
	repo domain.Repository,
	date string,
) (map[int]bool, error) {

	rows, err := repo.ListBlockedSlots(ctx, date)
	if err != nil {
		return nil, httperr.ErrUpstream("list blocked slots", err)
	}

	out := make(map[int]bool, len(rows))
	for _, bs := range rows {
		if t := schedule.ToMinutes(bs.StartTime); t >= 0 {
			out[t] = true
		}
	}
	return out, nil
}
