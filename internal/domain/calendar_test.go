package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DaysIn(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestNewCalendar(t *testing.T) {
	cal := NewCalendar(2024, time.February)
	require.Len(t, cal.Days, 29)
	assert.Equal(t, "2024-02-01", cal.Days[0].Key())
	assert.Equal(t, "2024-02-29", cal.Days[28].Key())
	assert.Equal(t, cal.Days[0].Date, cal.FirstDay())
	assert.Equal(t, cal.Days[28].Date, cal.LastDay())

	byDate := cal.ByDate()
	assert.Len(t, byDate, 29)
	for key, tasks := range byDate {
		assert.NotNil(t, tasks, key)
		assert.Empty(t, tasks, key)
	}
}

func TestCalendar_Place(t *testing.T) {
	cal := NewCalendar(2025, time.October)

	first := &Task{ID: 1, Name: "Meeting", Deadline: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)}
	second := &Task{ID: 2, Name: "Call", Deadline: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)}
	outside := &Task{ID: 3, Name: "Later", Deadline: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)}

	assert.True(t, cal.Place(first))
	assert.True(t, cal.Place(second))
	assert.False(t, cal.Place(outside))
	assert.Equal(t, 2, cal.TaskCount())

	byDate := cal.ByDate()
	assert.Equal(t, []*Task{first, second}, byDate["2025-10-10"])
	for key, tasks := range byDate {
		if key != "2025-10-10" {
			assert.Empty(t, tasks, key)
		}
	}
}
