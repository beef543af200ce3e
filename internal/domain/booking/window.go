package booking

import "time"

// DayWindow devolve os limites inclusivos [00:00:00, 23:59:59.999...] do
// dia de date, no fuso de date.
func DayWindow(date time.Time) (time.Time, time.Time) {
	loc := date.Location()

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24*time.Hour - time.Nanosecond)

	return start, end
}
