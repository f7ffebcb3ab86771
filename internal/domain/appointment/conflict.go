package appointment

import (
	"github.com/InstitutRosalie/salon-scheduler/internal/domain/schedule"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

// BufferMin é o intervalo obrigatório entre dois atendimentos ocupados.
const BufferMin = 15

// Occupied é um agendamento pending/accepted reduzido à sua pegada no dia,
// em minutos desde a meia-noite.
type Occupied struct {
	StartMin    int
	DurationMin int
}

// OccupiedFrom projeta os agendamentos persistidos do dia nas pegadas usadas
// pelo detector. Duração desconhecida cai no default do catálogo.
func OccupiedFrom(aps []models.Appointment) []Occupied {
	out := make([]Occupied, 0, len(aps))
	for _, ap := range aps {
		start := schedule.ToMinutes(ap.AppointmentTime)
		if start < 0 {
			continue
		}
		out = append(out, Occupied{
			StartMin:    start,
			DurationMin: schedule.ParseDuration(ap.Prestation.Duration),
		})
	}
	return out
}

// IsBlocked decide se o candidato colide com algum agendamento existente,
// contando duração e buffer dos dois lados. A janela bloqueada antes de um
// agendamento é fechada no início: um candidato que terminaria (com buffer)
// exatamente no início do existente ainda é recusado.
func IsBlocked(candidateStartMin, candidateDurationMin int, existing []Occupied) bool {
	_, blocked := BlockingWindow(candidateStartMin, candidateDurationMin, existing)
	return blocked
}

// BlockingWindow retorna o primeiro agendamento que bloqueia o candidato,
// para o erro de conflito nomear o horário e a extensão da janela.
func BlockingWindow(candidateStartMin, candidateDurationMin int, existing []Occupied) (Occupied, bool) {
	candidateEnd := candidateStartMin + candidateDurationMin + BufferMin

	for _, apt := range existing {
		blockStart := apt.StartMin - candidateDurationMin - BufferMin
		if blockStart < 0 {
			blockStart = 0
		}
		blockEnd := apt.StartMin + apt.DurationMin + BufferMin

		if candidateStartMin >= blockStart && candidateStartMin < blockEnd {
			return apt, true
		}
		if candidateStartMin < blockStart && candidateEnd > apt.StartMin {
			return apt, true
		}
	}

	return Occupied{}, false
}

// BlockedUntil é o fim da janela ocupada de um agendamento, buffer incluso.
func (o Occupied) BlockedUntil() int {
	return o.StartMin + o.DurationMin + BufferMin
}
