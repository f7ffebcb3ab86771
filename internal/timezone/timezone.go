package timezone

import "time"

// O instituto trabalha num único calendário local; nada de timezone por
// cliente ou por recurso.
const salonTimezone = "Europe/Paris"

func Location() *time.Location {
	loc, err := time.LoadLocation(salonTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a meia-noite local de hoje.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location())
}

func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		Location(),
	)
}
