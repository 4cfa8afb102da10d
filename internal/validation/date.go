package validation

import (
	"strconv"
	"strings"
	"time"

	"task-planner/internal/errors"
)

// ParseDate builds a deadline or range bound from separate year, month and
// day inputs. All three blank means no date and returns nil. Some but not all
// present is an incomplete date error; three values that do not name a real
// calendar day are an invalid date error.
func ParseDate(year, month, day string) (*time.Time, error) {
	year, month, day = strings.TrimSpace(year), strings.TrimSpace(month), strings.TrimSpace(day)

	present := 0
	for _, part := range []string{year, month, day} {
		if part != "" {
			present++
		}
	}
	switch present {
	case 0:
		return nil, nil
	case 1, 2:
		return nil, errors.NewIncompleteDateError(year, month, day)
	}

	y, errY := strconv.Atoi(year)
	m, errM := strconv.Atoi(month)
	d, errD := strconv.Atoi(day)
	if errY != nil || errM != nil || errD != nil {
		return nil, errors.NewInvalidDateError(year, month, day)
	}

	date, ok := calendarDate(y, m, d)
	if !ok {
		return nil, errors.NewInvalidDateError(year, month, day)
	}
	return &date, nil
}

// ParseDateParts is ParseDate for numeric input where zero means absent
func ParseDateParts(year, month, day int) (*time.Time, error) {
	return ParseDate(partString(year), partString(month), partString(day))
}

// ParseISODate parses YYYY-MM-DD as used in URLs
func ParseISODate(s string) (*time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return nil, errors.NewInvalidDateError(s, "", "")
	}
	date, err := ParseDate(parts[0], parts[1], parts[2])
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, errors.NewIncompleteDateError("", "", "")
	}
	return date, nil
}

func partString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// calendarDate rejects values time.Date would silently normalize, such as
// February 30th
func calendarDate(y, m, d int) (time.Time, bool) {
	if y < 1 || y > 9999 || m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}
	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if date.Year() != y || int(date.Month()) != m || date.Day() != d {
		return time.Time{}, false
	}
	return date, true
}
