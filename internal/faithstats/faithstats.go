// Package faithstats merges the per-source statistics (Anki memorization,
// KOReader Bible reading, prayer sessions, Arc church attendance) into
// combined daily and weekly reports.
package faithstats

import (
	"github.com/iBelieve/anki-bible-stats-server/internal/ankistats"
	"github.com/iBelieve/anki-bible-stats-server/internal/arcstats"
	"github.com/iBelieve/anki-bible-stats-server/internal/prayerstats"
	"github.com/iBelieve/anki-bible-stats-server/internal/readingstats"
)

// Sources names the data sources the merged reports draw from.
type Sources struct {
	AnkiDBPath          string
	KOReaderDBPath      string
	PrayerDBPath        string
	ArcExportPath       string
	ReadingTitlePattern string
}

// GetTodayStats returns today's combined faith activity.
func GetTodayStats(src Sources) (TodayStats, error) {
	anki, err := ankistats.GetTodayStudyMinutes(src.AnkiDBPath)
	if err != nil {
		return TodayStats{}, err
	}
	reading, err := readingstats.GetTodayReadingMinutes(src.KOReaderDBPath, src.ReadingTitlePattern)
	if err != nil {
		return TodayStats{}, err
	}
	prayer, err := prayerstats.GetTodayPrayerMinutes(src.PrayerDBPath)
	if err != nil {
		return TodayStats{}, err
	}
	return NewTodayStats(anki, reading, prayer), nil
}

// GetDailyStats returns combined per-day stats for the last 30 days, oldest
// first, with a summary across the whole period.
func GetDailyStats(src Sources) (DailyStats, error) {
	ankiDays, err := ankistats.GetLast30DaysStats(src.AnkiDBPath)
	if err != nil {
		return DailyStats{}, err
	}
	readingDays, err := readingstats.GetLast30DaysStats(src.KOReaderDBPath, src.ReadingTitlePattern)
	if err != nil {
		return DailyStats{}, err
	}
	prayerDays, err := prayerstats.GetLast30DaysStats(src.PrayerDBPath)
	if err != nil {
		return DailyStats{}, err
	}

	days := mergeDays(ankiDays, readingDays, prayerDays)
	return DailyStats{Days: days, Summary: summarizeDays(days)}, nil
}

// GetWeeklyStats returns combined per-week stats for the last 12 weeks,
// oldest first, with a summary across the whole period. Church attendance is
// included when an Arc export path is configured.
func GetWeeklyStats(src Sources) (WeeklyStats, error) {
	ankiWeeks, err := ankistats.GetLast12WeeksStats(src.AnkiDBPath)
	if err != nil {
		return WeeklyStats{}, err
	}
	readingWeeks, err := readingstats.GetLast12WeeksStats(src.KOReaderDBPath, src.ReadingTitlePattern)
	if err != nil {
		return WeeklyStats{}, err
	}
	prayerWeeks, err := prayerstats.GetLast12WeeksStats(src.PrayerDBPath)
	if err != nil {
		return WeeklyStats{}, err
	}

	var churchWeeks []arcstats.WeekStats
	if src.ArcExportPath != "" {
		churchWeeks, err = arcstats.ChurchWeeklyMinutes(src.ArcExportPath)
		if err != nil {
			return WeeklyStats{}, err
		}
	}

	weeks := mergeWeeks(ankiWeeks, readingWeeks, prayerWeeks, churchWeeks)
	return WeeklyStats{Weeks: weeks, Summary: summarizeWeeks(weeks)}, nil
}

// mergeDays zips per-source day slices into combined days. All sources cover
// the same 30-day period in the same order, so merging is positional with a
// date-keyed fallback for safety.
func mergeDays(anki []ankistats.DayStats, reading []readingstats.DayStats, prayer []prayerstats.DayStats) []DayStats {
	readingByDate := make(map[string]float64, len(reading))
	for _, d := range reading {
		readingByDate[d.Date] = d.Minutes
	}
	prayerByDate := make(map[string]float64, len(prayer))
	for _, d := range prayer {
		prayerByDate[d.Date] = d.Minutes
	}

	days := make([]DayStats, 0, len(anki))
	for _, a := range anki {
		days = append(days, DayStats{
			Date:                   a.Date,
			AnkiMinutes:            a.Minutes,
			AnkiMaturedPassages:    a.MaturedPassages,
			AnkiLostPassages:       a.LostPassages,
			AnkiCumulativePassages: a.CumulativePassages,
			ReadingMinutes:         readingByDate[a.Date],
			PrayerMinutes:          prayerByDate[a.Date],
		})
	}
	return days
}

func mergeWeeks(anki []ankistats.WeekStats, reading []readingstats.WeekStats, prayer []prayerstats.WeekStats, church []arcstats.WeekStats) []WeekStats {
	readingByWeek := make(map[string]float64, len(reading))
	for _, w := range reading {
		readingByWeek[w.WeekStart] = w.Minutes
	}
	prayerByWeek := make(map[string]float64, len(prayer))
	for _, w := range prayer {
		prayerByWeek[w.WeekStart] = w.Minutes
	}
	churchByWeek := make(map[string]float64, len(church))
	for _, w := range church {
		churchByWeek[w.WeekStart] = w.Minutes
	}

	weeks := make([]WeekStats, 0, len(anki))
	for _, a := range anki {
		weeks = append(weeks, WeekStats{
			WeekStart:              a.WeekStart,
			AnkiMinutes:            a.Minutes,
			AnkiMaturedPassages:    a.MaturedPassages,
			AnkiLostPassages:       a.LostPassages,
			AnkiCumulativePassages: a.CumulativePassages,
			ReadingMinutes:         readingByWeek[a.WeekStart],
			PrayerMinutes:          prayerByWeek[a.WeekStart],
			ChurchMinutes:          churchByWeek[a.WeekStart],
		})
	}
	return weeks
}
