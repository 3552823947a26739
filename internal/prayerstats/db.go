// Package prayerstats reads prayer session time out of a Proseuche prayer
// app database. Sessions carry a unix-millisecond start timestamp and a
// duration in seconds.
package prayerstats

import (
	"database/sql"
	"fmt"

	"github.com/iBelieve/anki-bible-stats-server/internal/database"
	"github.com/iBelieve/anki-bible-stats-server/internal/dateutil"
)

// DayStats holds prayer time for a single day.
type DayStats struct {
	// Date in YYYY-MM-DD format.
	Date string `json:"date"`
	// Prayer time in minutes.
	Minutes float64 `json:"minutes"`
}

// WeekStats holds prayer time for a single Sunday-based week.
type WeekStats struct {
	// Week start date (Sunday) in YYYY-MM-DD format.
	WeekStart string `json:"week_start"`
	// Prayer time in minutes.
	Minutes float64 `json:"minutes"`
}

// OpenDatabase opens a prayer app database in read-only mode.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open prayer database: %w", err)
	}
	return db, nil
}

// TodayPrayerMinutes returns today's prayer time in minutes.
func TodayPrayerMinutes(db *sql.DB) (float64, error) {
	todayStartMs, err := dateutil.TodayStartMs()
	if err != nil {
		return 0, err
	}

	var totalSec int64
	err = db.QueryRow(`
		SELECT COALESCE(SUM(duration_seconds), 0)
		FROM sessions
		WHERE started_at >= ?`, todayStartMs).Scan(&totalSec)
	if err != nil {
		return 0, fmt.Errorf("failed to query today's prayer time: %w", err)
	}
	return float64(totalSec) / 60.0, nil
}

// Last30DaysStats returns prayer time for each of the last 30 days, oldest
// first. Days without sessions have 0 minutes.
func Last30DaysStats(db *sql.DB) ([]DayStats, error) {
	period, err := dateutil.Last30Days()
	if err != nil {
		return nil, err
	}

	minutes, err := minutesByBucket(db, "date_str_from_ms", period)
	if err != nil {
		return nil, err
	}

	return dateutil.BuildResults(period, minutes, func(date string, mins float64) DayStats {
		return DayStats{Date: date, Minutes: mins}
	}), nil
}

// Last12WeeksStats returns prayer time for each of the last 12 weeks, oldest
// first. Weeks without sessions have 0 minutes.
func Last12WeeksStats(db *sql.DB) ([]WeekStats, error) {
	period, err := dateutil.Last12Weeks()
	if err != nil {
		return nil, err
	}

	minutes, err := minutesByBucket(db, "week_str_from_ms", period)
	if err != nil {
		return nil, err
	}

	return dateutil.BuildResults(period, minutes, func(date string, mins float64) WeekStats {
		return WeekStats{WeekStart: date, Minutes: mins}
	}), nil
}

// minutesByBucket groups session durations by day or week using the
// registered date scalar functions.
func minutesByBucket(db *sql.DB, bucketFunc string, period dateutil.DatePeriod) (map[string]float64, error) {
	query := fmt.Sprintf(`
		SELECT %s(started_at) AS bucket, SUM(duration_seconds) AS total_sec
		FROM sessions
		WHERE started_at >= ? AND started_at < ?
		GROUP BY bucket`, bucketFunc)

	rows, err := db.Query(query, period.StartMs, period.EndMs)
	if err != nil {
		return nil, fmt.Errorf("failed to query prayer time: %w", err)
	}
	defer rows.Close()

	minutes := make(map[string]float64)
	for rows.Next() {
		var bucket string
		var totalSec int64
		if err := rows.Scan(&bucket, &totalSec); err != nil {
			return nil, fmt.Errorf("failed to scan prayer time: %w", err)
		}
		minutes[bucket] = float64(totalSec) / 60.0
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prayer time: %w", err)
	}

	return minutes, nil
}

// GetTodayPrayerMinutes returns today's prayer time in minutes.
func GetTodayPrayerMinutes(dbPath string) (float64, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return TodayPrayerMinutes(db)
}

// GetLast30DaysStats returns per-day prayer stats for the last 30 days.
func GetLast30DaysStats(dbPath string) ([]DayStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Last30DaysStats(db)
}

// GetLast12WeeksStats returns per-week prayer stats for the last 12 weeks.
func GetLast12WeeksStats(dbPath string) ([]WeekStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Last12WeeksStats(db)
}
