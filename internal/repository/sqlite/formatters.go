package sqlite

import (
	"time"
)

// DateLayout is the day-granularity format used in keys and exports
const DateLayout = "2006-01-02"

// TruncateToDay returns midnight UTC of the calendar day of t, keeping the
// year, month and day as they read in t's own location
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatDeadlineForDB stores a deadline at day granularity
func FormatDeadlineForDB(t time.Time) string {
	return FormatTimeForDB(TruncateToDay(t))
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatDate formats t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
