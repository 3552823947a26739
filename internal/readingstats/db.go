// Package readingstats reads Bible reading time out of a KOReader statistics
// database (statistics.sqlite3). KOReader logs one page_stat_data row per
// page-read event with a unix-second start time and a duration; Bible titles
// are matched case-insensitively against a configurable LIKE pattern so any
// edition counts.
package readingstats

import (
	"database/sql"
	"fmt"

	"github.com/iBelieve/anki-bible-stats-server/internal/database"
	"github.com/iBelieve/anki-bible-stats-server/internal/dateutil"
)

// DefaultTitlePattern matches any book whose title contains "bible".
const DefaultTitlePattern = "%bible%"

// DayStats holds reading time for a single day.
type DayStats struct {
	// Date in YYYY-MM-DD format.
	Date string `json:"date"`
	// Reading time in minutes.
	Minutes float64 `json:"minutes"`
}

// WeekStats holds reading time for a single Sunday-based week.
type WeekStats struct {
	// Week start date (Sunday) in YYYY-MM-DD format.
	WeekStart string `json:"week_start"`
	// Reading time in minutes.
	Minutes float64 `json:"minutes"`
}

// OpenDatabase opens a KOReader statistics database in read-only mode.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open KOReader statistics database: %w", err)
	}
	return db, nil
}

// TodayReadingMinutes returns today's Bible reading time in minutes.
func TodayReadingMinutes(db *sql.DB, titlePattern string) (float64, error) {
	todayStartMs, err := dateutil.TodayStartMs()
	if err != nil {
		return 0, err
	}

	var totalSec int64
	err = db.QueryRow(`
		SELECT COALESCE(SUM(p.duration), 0)
		FROM page_stat_data p
		JOIN book b ON b.id = p.id_book
		WHERE LOWER(b.title) LIKE LOWER(?) AND p.start_time >= ?`,
		titlePattern, todayStartMs/1000).Scan(&totalSec)
	if err != nil {
		return 0, fmt.Errorf("failed to query today's reading time: %w", err)
	}
	return float64(totalSec) / 60.0, nil
}

// Last30DaysStats returns Bible reading time for each of the last 30 days,
// oldest first. Days without reading have 0 minutes.
func Last30DaysStats(db *sql.DB, titlePattern string) ([]DayStats, error) {
	period, err := dateutil.Last30Days()
	if err != nil {
		return nil, err
	}

	minutes, err := minutesByBucket(db, "date_str_from_sec", titlePattern, period)
	if err != nil {
		return nil, err
	}

	return dateutil.BuildResults(period, minutes, func(date string, mins float64) DayStats {
		return DayStats{Date: date, Minutes: mins}
	}), nil
}

// Last12WeeksStats returns Bible reading time for each of the last 12 weeks,
// oldest first. Weeks without reading have 0 minutes.
func Last12WeeksStats(db *sql.DB, titlePattern string) ([]WeekStats, error) {
	period, err := dateutil.Last12Weeks()
	if err != nil {
		return nil, err
	}

	minutes, err := minutesByBucket(db, "week_str_from_sec", titlePattern, period)
	if err != nil {
		return nil, err
	}

	return dateutil.BuildResults(period, minutes, func(date string, mins float64) WeekStats {
		return WeekStats{WeekStart: date, Minutes: mins}
	}), nil
}

// minutesByBucket groups page-read durations by day or week using the
// registered date scalar functions.
func minutesByBucket(db *sql.DB, bucketFunc, titlePattern string, period dateutil.DatePeriod) (map[string]float64, error) {
	query := fmt.Sprintf(`
		SELECT %s(p.start_time) AS bucket, SUM(p.duration) AS total_sec
		FROM page_stat_data p
		JOIN book b ON b.id = p.id_book
		WHERE LOWER(b.title) LIKE LOWER(?)
			AND p.start_time >= ? AND p.start_time < ?
		GROUP BY bucket`, bucketFunc)

	rows, err := db.Query(query, titlePattern, period.StartMs/1000, period.EndMs/1000)
	if err != nil {
		return nil, fmt.Errorf("failed to query reading time: %w", err)
	}
	defer rows.Close()

	minutes := make(map[string]float64)
	for rows.Next() {
		var bucket string
		var totalSec int64
		if err := rows.Scan(&bucket, &totalSec); err != nil {
			return nil, fmt.Errorf("failed to scan reading time: %w", err)
		}
		minutes[bucket] = float64(totalSec) / 60.0
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reading time: %w", err)
	}

	return minutes, nil
}

// GetTodayReadingMinutes returns today's Bible reading time in minutes.
func GetTodayReadingMinutes(dbPath, titlePattern string) (float64, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return TodayReadingMinutes(db, titlePattern)
}

// GetLast30DaysStats returns per-day reading stats for the last 30 days.
func GetLast30DaysStats(dbPath, titlePattern string) ([]DayStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Last30DaysStats(db, titlePattern)
}

// GetLast12WeeksStats returns per-week reading stats for the last 12 weeks.
func GetLast12WeeksStats(dbPath, titlePattern string) ([]WeekStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Last12WeeksStats(db, titlePattern)
}
