package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SlotStepMin é a granularidade dos inícios de créneau gerados.
const SlotStepMin = 15

var (
	rePeriod = regexp.MustCompile(`(\d{1,2})h(\d{2})?\s*-\s*(\d{1,2})h(\d{2})?`)
	reHour   = regexp.MustCompile(`^(\d{1,2})h(\d{2})?$`)
)

// ParsePeriods expande os períodos de um dia ("9h-13h | 14h30-19h") numa
// lista ordenada e deduplicada de inícios HH:MM, passo stepMin. Um créneau
// entra enquanto começar estritamente antes do fechamento do período e no
// máximo no cutoff de último atendimento; o cutoff só aperta, nunca estende
// além do fim do período. Período que não casa com o formato não contribui
// nada.
func ParsePeriods(periods, lastAppointment string, stepMin int) []string {
	if stepMin <= 0 {
		stepMin = SlotStepMin
	}

	cutoff := -1
	if m := reHour.FindStringSubmatch(strings.TrimSpace(lastAppointment)); m != nil {
		cutoff = hourToMinutes(m[1], m[2])
	}

	seen := make(map[int]bool)
	var starts []int

	for _, part := range strings.Split(periods, "|") {
		m := rePeriod.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			continue
		}

		open := hourToMinutes(m[1], m[2])
		close := hourToMinutes(m[3], m[4])

		limit := close
		if cutoff >= 0 && cutoff < limit {
			limit = cutoff
		}

		for t := open; t < close && t <= limit; t += stepMin {
			if !seen[t] {
				seen[t] = true
				starts = append(starts, t)
			}
		}
	}

	sort.Ints(starts)

	out := make([]string, 0, len(starts))
	for _, t := range starts {
		out = append(out, FormatMinutes(t))
	}
	return out
}

// ParsePeriodRanges retorna os intervalos [abre, fecha) em minutos, para o
// filtro de disponibilidade checar se início+duração+buffer ainda cabe.
func ParsePeriodRanges(periods string) [][2]int {
	var out [][2]int
	for _, part := range strings.Split(periods, "|") {
		m := rePeriod.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			continue
		}
		out = append(out, [2]int{
			hourToMinutes(m[1], m[2]),
			hourToMinutes(m[3], m[4]),
		})
	}
	return out
}

func hourToMinutes(h, m string) int {
	hours, _ := strconv.Atoi(h)
	minutes := 0
	if m != "" {
		minutes, _ = strconv.Atoi(m)
	}
	return hours*60 + minutes
}

// ToMinutes converte "HH:MM" em minutos desde meia-noite; -1 se ilegível.
func ToMinutes(hhmm string) int {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

func FormatMinutes(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}
