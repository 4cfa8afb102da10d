package validation

import (
	"testing"
	"time"

	"task-planner/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		year        string
		month       string
		day         string
		expected    *time.Time
		expectError string
	}{
		{name: "real date", year: "2025", month: "10", day: "10", expected: date(2025, 10, 10)},
		{name: "leading zeros", year: "2025", month: "01", day: "05", expected: date(2025, 1, 5)},
		{name: "surrounding spaces", year: " 2025 ", month: "3", day: " 1", expected: date(2025, 3, 1)},
		{name: "leap day", year: "2024", month: "2", day: "29", expected: date(2024, 2, 29)},
		{name: "all blank", year: "", month: "", day: ""},
		{name: "all whitespace", year: " ", month: "", day: "\t"},
		{name: "year only", year: "2025", expectError: "incomplete_date"},
		{name: "missing day", year: "2025", month: "10", expectError: "incomplete_date"},
		{name: "missing year", month: "10", day: "10", expectError: "incomplete_date"},
		{name: "february 30th", year: "2025", month: "2", day: "30", expectError: "invalid_date"},
		{name: "not a leap year", year: "2025", month: "2", day: "29", expectError: "invalid_date"},
		{name: "month 13", year: "2025", month: "13", day: "1", expectError: "invalid_date"},
		{name: "day zero", year: "2025", month: "1", day: "0", expectError: "invalid_date"},
		{name: "non numeric", year: "2025", month: "oct", day: "10", expectError: "invalid_date"},
		{name: "negative year", year: "-1", month: "1", day: "1", expectError: "invalid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.year, tt.month, tt.day)
			if tt.expectError != "" {
				require.Error(t, err)
				appErr, ok := errors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectError, appErr.Type.String())
				assert.True(t, errors.IsDateError(err))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseDate_InvalidMessageNamesInput(t *testing.T) {
	_, err := ParseDate("2025", "2", "30")
	require.Error(t, err)
	assert.Equal(t, "wrong date 2025-2-30", errors.GetUserMessage(err))
}

func TestParseDateParts(t *testing.T) {
	result, err := ParseDateParts(2025, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, date(2025, 10, 10), result)

	result, err = ParseDateParts(0, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = ParseDateParts(2025, 0, 1)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeIncompleteDate))

	_, err = ParseDateParts(2025, 4, 31)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidDate))
}

func TestParseISODate(t *testing.T) {
	result, err := ParseISODate("2025-10-10")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 10, 10), result)

	for _, input := range []string{"2025-10", "10.10.2025", "2025-02-30", "", "2025-xx-01"} {
		_, err := ParseISODate(input)
		assert.True(t, errors.IsDateError(err), input)
	}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
