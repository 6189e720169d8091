package calendar

import (
	"errors"
	"time"
)

// ErrNoWorkingDay is returned when no working day exists within the
// forward search window. It signals a degenerate configuration, for
// example a holiday list covering an entire year.
var ErrNoWorkingDay = errors.New("no working day found within the search window")

// MaxSearchDays bounds the forward search of NextWorkingDay. It is a
// safety bound, not a domain constant.
var MaxSearchDays = 365

// julianDay converts a date to a julian day number so that calendar days
// can be compared and stored at day granularity regardless of the
// time-of-day or monotonic clock reading carried by t.
func julianDay(t time.Time) int {
	year, m, day := t.Date()
	month := int(m)
	// nolint:gomnd // well-known algorithm to calculate julian date number
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

// HolidaySet is a day-granularity set of non-working dates. The zero
// value is an empty set.
type HolidaySet struct {
	days map[int]struct{}
}

// NewHolidaySet builds a set from the given dates. Duplicate entries are
// harmless.
func NewHolidaySet(dates ...time.Time) HolidaySet {
	s := HolidaySet{days: make(map[int]struct{}, len(dates))}
	for _, d := range dates {
		s.days[julianDay(d)] = struct{}{}
	}
	return s
}

// Add inserts a date into the set.
func (s *HolidaySet) Add(t time.Time) {
	if s.days == nil {
		s.days = make(map[int]struct{})
	}
	s.days[julianDay(t)] = struct{}{}
}

// Contains reports whether the set holds the calendar day of t.
func (s HolidaySet) Contains(t time.Time) bool {
	_, ok := s.days[julianDay(t)]
	return ok
}

// Len returns the number of distinct days in the set.
func (s HolidaySet) Len() int { return len(s.days) }

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	return julianDay(a) == julianDay(b)
}

// DaysBetween returns the number of calendar days from a to b, negative
// when b precedes a. Counting by julian day keeps the result exact
// across DST transitions, where duration arithmetic would come up a day
// short.
func DaysBetween(a, b time.Time) int {
	return julianDay(b) - julianDay(a)
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether t falls on a listed holiday.
func IsHoliday(t time.Time, holidays HolidaySet) bool {
	return holidays.Contains(t)
}

// IsWorkingDay reports whether t is a day work can be billed to. The
// holiday check applies even when weekends are included: a holiday on a
// Saturday is still a non-working day for a seven-day schedule.
func IsWorkingDay(t time.Time, holidays HolidaySet, includeWeekends bool) bool {
	if !includeWeekends && IsWeekend(t) {
		return false
	}
	return !IsHoliday(t, holidays)
}

// NextWorkingDay returns the first working day strictly after t,
// stepping one day at a time. It fails with ErrNoWorkingDay once
// MaxSearchDays forward steps are exhausted.
func NextWorkingDay(t time.Time, holidays HolidaySet, includeWeekends bool) (time.Time, error) {
	day := StartOfDay(t)
	for i := 0; i < MaxSearchDays; i++ {
		day = day.AddDate(0, 0, 1)
		if IsWorkingDay(day, holidays, includeWeekends) {
			return day, nil
		}
	}
	return time.Time{}, ErrNoWorkingDay
}
