package schedule

import (
	"sort"

	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

// WeeklySchedule é a abstração canônica sobre os dois modelos de agenda que
// a base de dados carrega: períodos de OpeningHours subdivididos em créneaux,
// ou AvailableSlots explícitos não subdivididos. A instalação escolhe um dos
// dois; o filtro de disponibilidade só enxerga esta interface.
type WeeklySchedule struct {
	days map[int]Day
}

type Day struct {
	starts  []int
	periods [][2]int
	fixed   bool
}

// FromOpeningHours monta a agenda a partir dos períodos recorrentes. Só o
// primeiro registro ativo de cada weekday conta (invariante: no máximo um é
// relevante).
func FromOpeningHours(rows []models.OpeningHours) WeeklySchedule {
	days := make(map[int]Day)

	for _, row := range rows {
		if !row.IsActive {
			continue
		}
		if _, taken := days[row.DayOfWeek]; taken {
			continue
		}

		var starts []int
		for _, s := range ParsePeriods(row.Periods, row.LastAppointment, SlotStepMin) {
			starts = append(starts, ToMinutes(s))
		}

		days[row.DayOfWeek] = Day{
			starts:  starts,
			periods: ParsePeriodRanges(row.Periods),
		}
	}

	return WeeklySchedule{days: days}
}

// FromAvailableSlots monta a agenda com um candidato por registro: o próprio
// start_time do slot, sem subdivisão e sem olhar a duração da prestation.
func FromAvailableSlots(rows []models.AvailableSlot) WeeklySchedule {
	starts := make(map[int]map[int]bool)

	for _, row := range rows {
		if !row.IsActive {
			continue
		}
		t := ToMinutes(row.StartTime)
		if t < 0 {
			continue
		}
		if starts[row.DayOfWeek] == nil {
			starts[row.DayOfWeek] = make(map[int]bool)
		}
		starts[row.DayOfWeek][t] = true
	}

	days := make(map[int]Day)
	for weekday, set := range starts {
		var list []int
		for t := range set {
			list = append(list, t)
		}
		sort.Ints(list)
		days[weekday] = Day{starts: list, fixed: true}
	}

	return WeeklySchedule{days: days}
}

// HasDay informa se existe recurso de agenda ativo para o weekday. Sem
// recurso, o dia está fechado.
func (ws WeeklySchedule) HasDay(weekday int) bool {
	_, ok := ws.days[weekday]
	return ok
}

func (ws WeeklySchedule) Day(weekday int) (Day, bool) {
	d, ok := ws.days[weekday]
	return d, ok
}

// Starts retorna os inícios candidatos do dia, ordenados, em HH:MM.
func (d Day) Starts() []string {
	out := make([]string, 0, len(d.starts))
	for _, t := range d.starts {
		out = append(out, FormatMinutes(t))
	}
	return out
}

// Fits decide se um atendimento de spanMin minutos começando em startMin cabe
// na agenda do dia. No modo de slots fixos a duração é ignorada: o slot é
// reservado inteiro. No modo de períodos, início+span tem que caber antes do
// fechamento do período que contém o início.
func (d Day) Fits(startMin, spanMin int) bool {
	if d.fixed {
		return true
	}
	for _, p := range d.periods {
		if startMin >= p[0] && startMin < p[1] && startMin+spanMin <= p[1] {
			return true
		}
	}
	return false
}
