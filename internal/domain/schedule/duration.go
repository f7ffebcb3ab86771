package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMin cobre duração ausente ou ilegível no catálogo. Dado
// malformado nunca pode travar o scheduler.
const DefaultDurationMin = 90

var (
	reDurationHours = regexp.MustCompile(`^(\d{1,2})h(\d{2})?$`)
	reDurationMin   = regexp.MustCompile(`^(\d{1,3})\s*min$`)
)

// ParseDuration converte a duração em texto livre de uma prestation ("1h30",
// "45 min", "60") para minutos. Nunca retorna erro: falha de parsing cai no
// default.
func ParseDuration(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return DefaultDurationMin
	}

	if m := reDurationHours.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		return hours*60 + minutes
	}

	if m := reDurationMin.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}

	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}

	return DefaultDurationMin
}
