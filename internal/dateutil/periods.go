// Package dateutil buckets timestamps into logical days and weeks. A day runs
// from 4 AM to 4 AM in the configured timezone rather than midnight to
// midnight, so late-night activity counts toward the evening's date; weeks
// start on Sunday. Every stats source uses these boundaries so their rows line
// up when merged.
package dateutil

import (
	"fmt"
	"time"
)

// Timezone used for calculating day boundaries across all stats sources.
const Timezone = "America/Chicago"

// RolloverHour shifts day boundaries from midnight to 4 AM.
const RolloverHour = 4

// DateFormat is the wire format for day and week-start dates.
const DateFormat = "2006-01-02"

func location() (*time.Location, error) {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", Timezone, err)
	}
	return loc, nil
}

// DayBoundaries returns the start and end of the day offset days before today
// as epoch milliseconds, plus the day's date string. Offset 0 is today, 1 is
// yesterday, and so on.
func DayBoundaries(offset int) (startMs, endMs int64, date string, err error) {
	loc, err := location()
	if err != nil {
		return 0, 0, "", err
	}

	target := time.Now().In(loc).AddDate(0, 0, -offset)
	midnight := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, loc)
	dayStart := midnight.Add(RolloverHour * time.Hour)
	dayEnd := dayStart.AddDate(0, 0, 1)

	return dayStart.UnixMilli(), dayEnd.UnixMilli(), target.Format(DateFormat), nil
}

// WeekBoundaries returns the start and end of the Sunday-based week offset
// weeks before the current week as epoch milliseconds, plus the week's start
// date string (the Sunday).
func WeekBoundaries(offset int) (startMs, endMs int64, weekStart string, err error) {
	loc, err := location()
	if err != nil {
		return 0, 0, "", err
	}

	now := time.Now().In(loc)
	daysSinceSunday := int(now.Weekday())
	target := now.AddDate(0, 0, -daysSinceSunday-7*offset)

	midnight := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, loc)
	start := midnight.Add(RolloverHour * time.Hour)
	end := start.AddDate(0, 0, 7)

	return start.UnixMilli(), end.UnixMilli(), target.Format(DateFormat), nil
}

// TodayStartMs returns the start of today in epoch milliseconds.
func TodayStartMs() (int64, error) {
	startMs, _, _, err := DayBoundaries(0)
	return startMs, err
}

// DateStringFromMs converts an epoch-millisecond timestamp to its logical
// YYYY-MM-DD date, applying the timezone and rollover hour.
func DateStringFromMs(ms int64) (string, error) {
	loc, err := location()
	if err != nil {
		return "", err
	}
	adjusted := time.UnixMilli(ms).In(loc).Add(-RolloverHour * time.Hour)
	return adjusted.Format(DateFormat), nil
}

// WeekStringFromMs converts an epoch-millisecond timestamp to the YYYY-MM-DD
// date of its week's Sunday, applying the timezone and rollover hour.
func WeekStringFromMs(ms int64) (string, error) {
	loc, err := location()
	if err != nil {
		return "", err
	}
	adjusted := time.UnixMilli(ms).In(loc).Add(-RolloverHour * time.Hour)
	sunday := adjusted.AddDate(0, 0, -int(adjusted.Weekday()))
	return sunday.Format(DateFormat), nil
}

// DatePeriod is a contiguous run of days or weeks with its date strings and
// millisecond boundaries.
type DatePeriod struct {
	// Dates holds the YYYY-MM-DD string for each day (or week start) in the
	// period, oldest first.
	Dates   []string
	StartMs int64
	EndMs   int64
}

// Last30Days returns the period covering the last 30 logical days, today
// included.
func Last30Days() (DatePeriod, error) {
	startMs, _, _, err := DayBoundaries(29)
	if err != nil {
		return DatePeriod{}, err
	}
	_, endMs, _, err := DayBoundaries(0)
	if err != nil {
		return DatePeriod{}, err
	}

	dates := make([]string, 0, 30)
	for offset := 29; offset >= 0; offset-- {
		_, _, date, err := DayBoundaries(offset)
		if err != nil {
			return DatePeriod{}, err
		}
		dates = append(dates, date)
	}

	return DatePeriod{Dates: dates, StartMs: startMs, EndMs: endMs}, nil
}

// Last12Weeks returns the period covering the last 12 Sunday-based weeks,
// the current week included.
func Last12Weeks() (DatePeriod, error) {
	startMs, _, _, err := WeekBoundaries(11)
	if err != nil {
		return DatePeriod{}, err
	}
	_, endMs, _, err := WeekBoundaries(0)
	if err != nil {
		return DatePeriod{}, err
	}

	dates := make([]string, 0, 12)
	for offset := 11; offset >= 0; offset-- {
		_, _, weekStart, err := WeekBoundaries(offset)
		if err != nil {
			return DatePeriod{}, err
		}
		dates = append(dates, weekStart)
	}

	return DatePeriod{Dates: dates, StartMs: startMs, EndMs: endMs}, nil
}

// BuildResults maps every date in the period through mapper, taking values
// from results and falling back to T's zero value for dates with no entry.
// The output is ordered oldest first, one element per date.
func BuildResults[T, R any](p DatePeriod, results map[string]T, mapper func(date string, value T) R) []R {
	out := make([]R, 0, len(p.Dates))
	for _, date := range p.Dates {
		out = append(out, mapper(date, results[date]))
	}
	return out
}
