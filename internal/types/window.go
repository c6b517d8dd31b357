package types

import (
	"errors"
	"strconv"
	"time"
)

// ErrTimePeriodInvalid is returned when a time period selector is not recognized.
var ErrTimePeriodInvalid = errors.New("the specified time period is invalid")

// Window is a time interval with optional bounds.
//
// A zero Start or End means the interval is unbounded on that side.
// Calendar windows include their Start instant, rolling windows do not.
// The End is always exclusive. Consumers of historical data depend on
// this asymmetry, it must not be unified.
type Window struct {
	Start          time.Time
	End            time.Time
	InclusiveStart bool
}

// Bounded reports whether both ends of the window are set.
func (w Window) Bounded() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// Contains reports whether the time instant falls inside the window,
// honoring the start boundary semantics.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() {
		if w.InclusiveStart {
			if t.Before(w.Start) {
				return false
			}
		} else if !t.After(w.Start) {
			return false
		}
	}

	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}

	return true
}

// WindowForMonth returns the calendar window [first instant of the month,
// first instant of the next month). The start is inclusive.
func WindowForMonth(m Month) Window {
	return Window{
		Start:          m.First(),
		End:            m.AddDate(0, 1).First(),
		InclusiveStart: true,
	}
}

// WindowSinceDays returns the rolling window of the given number of days
// before now, unbounded above. The start is exclusive.
func WindowSinceDays(days int, now time.Time) Window {
	return Window{Start: now.AddDate(0, 0, -days)}
}

// ParseTimePeriod resolves a time period selector to a Window relative to now.
//
// Valid selectors are "all", "month", "week" and "day". "month" is the
// current calendar month, "week" and "day" are rolling windows.
func ParseTimePeriod(selector string, now time.Time) (Window, error) {
	switch selector {
	case "all":
		return Window{}, nil
	case "month":
		return WindowForMonth(MonthOf(now)), nil
	case "week":
		return WindowSinceDays(7, now), nil
	case "day":
		return WindowSinceDays(1, now), nil
	}

	return Window{}, ErrTimePeriodInvalid
}

// ParsePeriod resolves a time period selector like ParseTimePeriod, but
// also accepts an integer day count for a rolling window of that length.
func ParsePeriod(selector string, now time.Time) (Window, error) {
	win, err := ParseTimePeriod(selector, now)
	if err == nil {
		return win, nil
	}

	days, convErr := strconv.Atoi(selector)
	if convErr != nil {
		return Window{}, ErrTimePeriodInvalid
	}

	return WindowSinceDays(days, now), nil
}
