package models

import (
	"fmt"
	"time"
)

// Granularity is the user-selected comparison period of the dashboard.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// DefaultGranularity is used when a caller does not pick one.
const DefaultGranularity = GranularityMonth

func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	if !g.IsValid() {
		return "", fmt.Errorf("invalid granularity: %q", s)
	}
	return g, nil
}

func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// OrDefault returns g, or DefaultGranularity when g is not a known value.
func (g Granularity) OrDefault() Granularity {
	if g.IsValid() {
		return g
	}
	return DefaultGranularity
}

// NominalDays is the window length used by the approximate SLA of the comparative rollup.
func (g Granularity) NominalDays() float64 {
	switch g {
	case GranularityDay:
		return 1
	case GranularityWeek:
		return 7
	case GranularityMonth:
		return 30
	case GranularityYear:
		return 365
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// Window holds the current and previous comparison periods.
// The current period is [CurrentStart, CurrentEnd] and the previous one is
// [PreviousStart, PreviousEnd), with PreviousEnd == CurrentStart.
type Window struct {
	Granularity   Granularity `json:"granularity"`
	CurrentStart  time.Time   `json:"currentStart"`
	CurrentEnd    time.Time   `json:"currentEnd"`
	PreviousStart time.Time   `json:"previousStart"`
	PreviousEnd   time.Time   `json:"previousEnd"`
}

func (w Window) InCurrent(t time.Time) bool {
	return !t.Before(w.CurrentStart) && !t.After(w.CurrentEnd)
}

func (w Window) InPrevious(t time.Time) bool {
	return !t.Before(w.PreviousStart) && t.Before(w.PreviousEnd)
}

// Resolve computes the window boundaries for now in now's location.
//
//   - day:   today 00:00 -> now; previous is yesterday
//   - week:  Monday 00:00 (ISO week, Sunday counts as day 7) -> now; previous is the 7 days before
//   - month: 1st of month 00:00 -> now; previous is the whole previous calendar month
//   - year:  Jan 1 00:00 -> now; previous is the whole previous calendar year
func (g Granularity) Resolve(now time.Time) Window {
	loc := now.Location()
	y, m, d := now.Date()

	var currentStart, previousStart time.Time
	switch g {
	case GranularityDay:
		currentStart = time.Date(y, m, d, 0, 0, 0, 0, loc)
		previousStart = time.Date(y, m, d-1, 0, 0, 0, 0, loc)
	case GranularityWeek:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		currentStart = time.Date(y, m, d-(weekday-1), 0, 0, 0, 0, loc)
		previousStart = time.Date(y, m, d-(weekday-1)-7, 0, 0, 0, 0, loc)
	case GranularityMonth:
		currentStart = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		previousStart = time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
	case GranularityYear:
		currentStart = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
		previousStart = time.Date(y-1, time.January, 1, 0, 0, 0, 0, loc)
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}

	return Window{
		Granularity:   g,
		CurrentStart:  currentStart,
		CurrentEnd:    now,
		PreviousStart: previousStart,
		PreviousEnd:   currentStart,
	}
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth truncates t to the first day of its month in t's location.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of days of the month containing t.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DayKey formats t's local calendar day, e.g. "2026-10-18".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey formats t's local calendar month, e.g. "2026-10".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
