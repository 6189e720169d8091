package planner

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/taskplan/core/calendar"
	"github.com/kilianp07/taskplan/core/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tasks(efforts ...float64) []model.Task {
	out := make([]model.Task, len(efforts))
	for i, e := range efforts {
		out[i] = model.Task{ID: string(rune('a' + i)), Effort: e}
	}
	return out
}

func weekdayConfig(start time.Time) Config {
	return Config{StartDate: start, WorkHoursPerDay: 8}
}

func TestValidateHours(t *testing.T) {
	cfg := Config{StartDate: day(2024, time.January, 2)}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "work hours per day must be greater than 0")

	cfg.WorkHoursPerDay = -1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.WorkHoursPerDay = math.NaN()
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateStartDate(t *testing.T) {
	cfg := Config{WorkHoursPerDay: 8}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "project start date is not valid")
}

func TestValidationFailsBeforeAnyWork(t *testing.T) {
	out, err := Schedule(tasks(8), Config{})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestTwoTasksShareOneDay(t *testing.T) {
	// Scenario: two 4h tasks fit a single 8h Tuesday.
	out, err := Schedule(tasks(4, 4), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i, s := range out {
		assert.Equal(t, day(2024, time.January, 2), s.Start, "task %d start", i)
		assert.Equal(t, day(2024, time.January, 2), s.End, "task %d end", i)
	}
}

func TestFullDayPushesNextTask(t *testing.T) {
	out, err := Schedule(tasks(8, 4), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 2), out[0].Start)
	assert.Equal(t, day(2024, time.January, 2), out[0].End)
	assert.Equal(t, day(2024, time.January, 3), out[1].Start)
	assert.Equal(t, day(2024, time.January, 3), out[1].End)
}

func TestWeekendSkipped(t *testing.T) {
	// Friday is full, the next task lands on Monday.
	out, err := Schedule(tasks(8, 8), weekdayConfig(day(2024, time.January, 5)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 5), out[0].Start)
	assert.Equal(t, day(2024, time.January, 8), out[1].Start)
	assert.Equal(t, day(2024, time.January, 8), out[1].End)
}

func TestHolidaySkipped(t *testing.T) {
	cfg := weekdayConfig(day(2024, time.January, 2))
	cfg.Holidays = []time.Time{day(2024, time.January, 3)}
	out, err := Schedule(tasks(8, 8), cfg)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 2), out[0].End)
	assert.Equal(t, day(2024, time.January, 4), out[1].Start)
}

func TestLongTaskSpansWeeks(t *testing.T) {
	// 80h at 8h/day starting Tuesday 2024-01-02 covers ten working days
	// and two weekends, ending Monday 2024-01-15.
	out, err := Schedule(tasks(80), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 2), out[0].Start)
	assert.Equal(t, day(2024, time.January, 15), out[0].End)
}

func TestFullyBlockedCalendarFails(t *testing.T) {
	start := day(2024, time.January, 1)
	cfg := Config{StartDate: start, WorkHoursPerDay: 8, IncludeWeekends: true}
	for i := 0; i < 366; i++ {
		cfg.Holidays = append(cfg.Holidays, start.AddDate(0, 0, i))
	}
	out, err := Schedule(tasks(8), cfg)
	require.ErrorIs(t, err, calendar.ErrNoWorkingDay)
	assert.Nil(t, out, "no partial schedule on failure")
}

func TestStartDateAdvancesToWorkingDay(t *testing.T) {
	// Saturday start moves to Monday before any task is placed.
	out, err := Schedule(tasks(4), weekdayConfig(day(2024, time.January, 6)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 8), out[0].Start)
}

func TestZeroEffortPinsToCursor(t *testing.T) {
	out, err := Schedule(tasks(8, 0, 4), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	// The 8h task fills Tuesday and rolls the cursor, so the zero-effort
	// task occurs on Wednesday without consuming anything.
	assert.Equal(t, day(2024, time.January, 3), out[1].Start)
	assert.Equal(t, day(2024, time.January, 3), out[1].End)
	assert.Equal(t, day(2024, time.January, 3), out[2].Start)
}

func TestNegativeAndNonFiniteEffortTreatedAsZero(t *testing.T) {
	out, err := Schedule(tasks(-3, math.NaN(), math.Inf(1), 4), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, day(2024, time.January, 2), out[i].Start, "task %d", i)
		assert.Equal(t, day(2024, time.January, 2), out[i].End, "task %d", i)
	}
	assert.Equal(t, day(2024, time.January, 2), out[3].Start)
}

func TestWeekendsIncluded(t *testing.T) {
	cfg := weekdayConfig(day(2024, time.January, 5))
	cfg.IncludeWeekends = true
	out, err := Schedule(tasks(8, 8), cfg)
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 6), out[1].Start, "saturday is billable")
}

func TestPartialDayCarriesRemainder(t *testing.T) {
	// 6h then 6h: the second task starts on the same day and spills onto
	// the next one.
	out, err := Schedule(tasks(6, 6), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 2), out[1].Start)
	assert.Equal(t, day(2024, time.January, 3), out[1].End)
}

func TestOrderAndFieldsPreserved(t *testing.T) {
	in := []model.Task{
		{ID: "t1", Name: "design", Effort: 4, Tags: map[string]string{"team": "core"}},
		{ID: "t2", Name: "build", Effort: 12},
		{ID: "t3", Name: "review", Effort: 0},
	}
	out, err := Schedule(in, weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i], out[i].Task, "task %d must pass through unchanged", i)
	}
}

func TestScheduleInvariants(t *testing.T) {
	cfg := weekdayConfig(day(2024, time.February, 1))
	cfg.Holidays = []time.Time{day(2024, time.February, 9), day(2024, time.February, 14)}
	efforts := []float64{3, 0, 13, 8, 1.5, 27, 0.5, 6}
	out, err := Schedule(tasks(efforts...), cfg)
	require.NoError(t, err)

	holidays := calendar.NewHolidaySet(cfg.Holidays...)
	for i, s := range out {
		require.False(t, s.Start.IsZero(), "task %d start unset", i)
		assert.False(t, s.End.Before(s.Start), "task %d end before start", i)
		assert.True(t, calendar.IsWorkingDay(s.Start, holidays, false), "task %d starts on a non-working day", i)
		assert.True(t, calendar.IsWorkingDay(s.End, holidays, false), "task %d ends on a non-working day", i)
		if i > 0 {
			assert.False(t, s.Start.Before(out[i-1].End), "task %d overlaps task %d", i, i-1)
		}
	}
}

// A run whose last task exactly fills the final workable day must
// succeed even when the rest of the calendar is blocked; the exhaustion
// only matters to a task that still needs capacity.
func TestLastTaskFillsFinalWorkableDay(t *testing.T) {
	start := day(2024, time.January, 2)
	cfg := Config{StartDate: start, WorkHoursPerDay: 8, IncludeWeekends: true}
	for i := 1; i <= 400; i++ {
		cfg.Holidays = append(cfg.Holidays, start.AddDate(0, 0, i))
	}

	out, err := Schedule(tasks(8), cfg)
	require.NoError(t, err)
	assert.Equal(t, start, out[0].Start)
	assert.Equal(t, start, out[0].End)

	// One more task that needs hours has nowhere to go.
	_, err = Schedule(tasks(8, 1), cfg)
	require.ErrorIs(t, err, calendar.ErrNoWorkingDay)
}

// Pins the eager-rollover behavior: as soon as a day is exactly full the
// cursor moves to the next working day, observable between two place
// calls.
func TestCursorRollsEagerlyWhenDayFills(t *testing.T) {
	cfg := weekdayConfig(day(2024, time.January, 2))
	cur, err := newCursor(cfg)
	require.NoError(t, err)

	_, err = cur.place(model.Task{Effort: 8})
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 3), cur.day, "cursor should already sit on the next day")
	assert.Zero(t, cur.used)
}

func TestScheduleSpansDSTWeekend(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 16h from Friday 2024-03-08 lands the second day on Monday, across
	// the spring-forward weekend.
	cfg := Config{StartDate: time.Date(2024, time.March, 8, 0, 0, 0, 0, ny), WorkHoursPerDay: 8}
	out, err := Schedule(tasks(16), cfg)
	require.NoError(t, err)
	assert.True(t, calendar.SameDay(out[0].Start, time.Date(2024, time.March, 8, 0, 0, 0, 0, ny)))
	assert.True(t, calendar.SameDay(out[0].End, time.Date(2024, time.March, 11, 0, 0, 0, 0, ny)))
	assert.Equal(t, 4, out[0].SpanDays(), "span must count calendar days, not 24h periods")
}

func TestCapacityConservation(t *testing.T) {
	// A 20h task at 8h/day spread over Tue-Thu: 8+8+4, never exceeding
	// the daily budget, summing to the effort.
	out, err := Schedule(tasks(20), weekdayConfig(day(2024, time.January, 2)))
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.January, 2), out[0].Start)
	assert.Equal(t, day(2024, time.January, 4), out[0].End)
	assert.Equal(t, 3, out[0].SpanDays())
}
