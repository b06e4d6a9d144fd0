package dateutil

import "time"

// DayFormat is the wire format for day-granularity dates.
const DayFormat = "2006-01-02"

// Day truncates t to midnight UTC. Every date that is persisted or compared at
// day granularity must pass through here first; mixing time-bearing and
// day-normalized values is how duplicate attendance rows happen.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a day-normalized UTC time.
func ParseDay(v string) (time.Time, error) {
	t, err := time.Parse(DayFormat, v)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Range returns every calendar day in [start, end] inclusive, normalized to
// midnight UTC. An inverted range yields nil.
func Range(start, end time.Time) []time.Time {
	start = Day(start)
	end = Day(end)
	if start.After(end) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthBounds returns the first day of (year, month) and the first day of the
// following month, both midnight UTC. Callers filter with date >= start AND
// date < end.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
