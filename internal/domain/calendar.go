package domain

import "time"

// CalendarDay holds the tasks due on one day of a month
type CalendarDay struct {
	Date  time.Time
	Tasks []*Task
}

// Key returns the day as YYYY-MM-DD
func (d CalendarDay) Key() string {
	return d.Date.Format(DateLayout)
}

// Calendar is one month of days, each present even when it has no tasks
type Calendar struct {
	Year  int
	Month time.Month
	Days  []CalendarDay
}

// DaysIn returns the number of days of month in year
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NewCalendar returns a month with every day present and no tasks
func NewCalendar(year int, month time.Month) *Calendar {
	n := DaysIn(year, month)
	cal := &Calendar{Year: year, Month: month, Days: make([]CalendarDay, n)}
	for i := range cal.Days {
		cal.Days[i] = CalendarDay{
			Date:  time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC),
			Tasks: []*Task{},
		}
	}
	return cal
}

// Place appends task to the day of its deadline. Tasks outside the month are
// ignored and reported as false.
func (c *Calendar) Place(task *Task) bool {
	y, m, d := task.Deadline.Date()
	if y != c.Year || m != c.Month || d < 1 || d > len(c.Days) {
		return false
	}
	c.Days[d-1].Tasks = append(c.Days[d-1].Tasks, task)
	return true
}

// ByDate returns the calendar as a map from YYYY-MM-DD to that day's tasks
func (c *Calendar) ByDate() map[string][]*Task {
	out := make(map[string][]*Task, len(c.Days))
	for _, day := range c.Days {
		out[day.Key()] = day.Tasks
	}
	return out
}

// TaskCount returns the number of tasks across all days
func (c *Calendar) TaskCount() int {
	total := 0
	for _, day := range c.Days {
		total += len(day.Tasks)
	}
	return total
}

// FirstDay is the first day of the month
func (c *Calendar) FirstDay() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay is the last day of the month
func (c *Calendar) LastDay() time.Time {
	return time.Date(c.Year, c.Month, len(c.Days), 0, 0, 0, 0, time.UTC)
}
