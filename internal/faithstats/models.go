package faithstats

// TodayStats combines today's faith activity across all sources.
type TodayStats struct {
	AnkiMinutes    float64 `json:"anki_minutes"`
	ReadingMinutes float64 `json:"reading_minutes"`
	PrayerMinutes  float64 `json:"prayer_minutes"`
	TotalMinutes   float64 `json:"total_minutes"`
	TotalHours     float64 `json:"total_hours"`
}

// NewTodayStats builds TodayStats from per-source minutes.
func NewTodayStats(anki, reading, prayer float64) TodayStats {
	total := anki + reading + prayer
	return TodayStats{
		AnkiMinutes:    anki,
		ReadingMinutes: reading,
		PrayerMinutes:  prayer,
		TotalMinutes:   total,
		TotalHours:     total / 60.0,
	}
}

// DayStats combines one day's faith activity across all sources.
type DayStats struct {
	// Date in YYYY-MM-DD format.
	Date string `json:"date"`

	// Anki Bible memorization.
	AnkiMinutes            float64 `json:"anki_minutes"`
	AnkiMaturedPassages    int64   `json:"anki_matured_passages"`
	AnkiLostPassages       int64   `json:"anki_lost_passages"`
	AnkiCumulativePassages int64   `json:"anki_cumulative_passages"`

	// KOReader Bible reading.
	ReadingMinutes float64 `json:"reading_minutes"`

	// Prayer sessions.
	PrayerMinutes float64 `json:"prayer_minutes"`
}

// TotalMinutes sums all faith activity for the day.
func (d *DayStats) TotalMinutes() float64 {
	return d.AnkiMinutes + d.ReadingMinutes + d.PrayerMinutes
}

// WeekStats combines one week's faith activity across all sources.
type WeekStats struct {
	// Week start date (Sunday) in YYYY-MM-DD format.
	WeekStart string `json:"week_start"`

	// Anki Bible memorization.
	AnkiMinutes            float64 `json:"anki_minutes"`
	AnkiMaturedPassages    int64   `json:"anki_matured_passages"`
	AnkiLostPassages       int64   `json:"anki_lost_passages"`
	AnkiCumulativePassages int64   `json:"anki_cumulative_passages"`

	// KOReader Bible reading.
	ReadingMinutes float64 `json:"reading_minutes"`

	// Prayer sessions.
	PrayerMinutes float64 `json:"prayer_minutes"`

	// Church attendance from Arc Timeline.
	ChurchMinutes float64 `json:"church_minutes"`
}

// TotalMinutes sums all faith activity for the week, church time included.
func (w *WeekStats) TotalMinutes() float64 {
	return w.AnkiMinutes + w.ReadingMinutes + w.PrayerMinutes + w.ChurchMinutes
}

// Summary aggregates a run of daily or weekly stats.
type Summary struct {
	// Anki.
	AnkiTotalMinutes         float64 `json:"anki_total_minutes"`
	AnkiTotalHours           float64 `json:"anki_total_hours"`
	AnkiAverageMinutes       float64 `json:"anki_average_minutes"`
	AnkiActivePeriods        int     `json:"anki_active_periods"`
	AnkiTotalMaturedPassages int64   `json:"anki_total_matured_passages"`
	AnkiTotalLostPassages    int64   `json:"anki_total_lost_passages"`
	AnkiNetProgress          int64   `json:"anki_net_progress"`

	// Reading.
	ReadingTotalMinutes   float64 `json:"reading_total_minutes"`
	ReadingTotalHours     float64 `json:"reading_total_hours"`
	ReadingAverageMinutes float64 `json:"reading_average_minutes"`
	ReadingActivePeriods  int     `json:"reading_active_periods"`

	// Prayer.
	PrayerTotalMinutes   float64 `json:"prayer_total_minutes"`
	PrayerTotalHours     float64 `json:"prayer_total_hours"`
	PrayerAverageMinutes float64 `json:"prayer_average_minutes"`
	PrayerActivePeriods  int     `json:"prayer_active_periods"`

	// Combined.
	TotalMinutes     float64 `json:"total_minutes"`
	TotalHours       float64 `json:"total_hours"`
	AverageMinutes   float64 `json:"average_minutes"`
	TotalPeriods     int     `json:"total_periods"`
	ActiveAnyPeriods int     `json:"active_any_periods"`
}

// DailyStats is the 30-day report with its summary.
type DailyStats struct {
	Days    []DayStats `json:"days"`
	Summary Summary    `json:"summary"`
}

// WeeklyStats is the 12-week report with its summary.
type WeeklyStats struct {
	Weeks   []WeekStats `json:"weeks"`
	Summary Summary     `json:"summary"`
}

func summarizeDays(days []DayStats) Summary {
	var s Summary
	s.TotalPeriods = len(days)

	for _, d := range days {
		s.AnkiTotalMinutes += d.AnkiMinutes
		s.ReadingTotalMinutes += d.ReadingMinutes
		s.PrayerTotalMinutes += d.PrayerMinutes
		s.AnkiTotalMaturedPassages += d.AnkiMaturedPassages
		s.AnkiTotalLostPassages += d.AnkiLostPassages

		if d.AnkiMinutes > 0 {
			s.AnkiActivePeriods++
		}
		if d.ReadingMinutes > 0 {
			s.ReadingActivePeriods++
		}
		if d.PrayerMinutes > 0 {
			s.PrayerActivePeriods++
		}
		if d.TotalMinutes() > 0 {
			s.ActiveAnyPeriods++
		}
	}

	s.finish()
	return s
}

func summarizeWeeks(weeks []WeekStats) Summary {
	var s Summary
	s.TotalPeriods = len(weeks)

	for _, w := range weeks {
		s.AnkiTotalMinutes += w.AnkiMinutes
		s.ReadingTotalMinutes += w.ReadingMinutes
		s.PrayerTotalMinutes += w.PrayerMinutes
		s.AnkiTotalMaturedPassages += w.AnkiMaturedPassages
		s.AnkiTotalLostPassages += w.AnkiLostPassages

		if w.AnkiMinutes > 0 {
			s.AnkiActivePeriods++
		}
		if w.ReadingMinutes > 0 {
			s.ReadingActivePeriods++
		}
		if w.PrayerMinutes > 0 {
			s.PrayerActivePeriods++
		}
		if w.TotalMinutes() > 0 {
			s.ActiveAnyPeriods++
		}
	}

	s.finish()
	return s
}

// finish derives totals, hours, and averages from the accumulated sums.
func (s *Summary) finish() {
	s.TotalMinutes = s.AnkiTotalMinutes + s.ReadingTotalMinutes + s.PrayerTotalMinutes
	s.AnkiTotalHours = s.AnkiTotalMinutes / 60.0
	s.ReadingTotalHours = s.ReadingTotalMinutes / 60.0
	s.PrayerTotalHours = s.PrayerTotalMinutes / 60.0
	s.TotalHours = s.TotalMinutes / 60.0
	s.AnkiNetProgress = s.AnkiTotalMaturedPassages - s.AnkiTotalLostPassages

	if s.TotalPeriods > 0 {
		n := float64(s.TotalPeriods)
		s.AnkiAverageMinutes = s.AnkiTotalMinutes / n
		s.ReadingAverageMinutes = s.ReadingTotalMinutes / n
		s.PrayerAverageMinutes = s.PrayerTotalMinutes / n
		s.AverageMinutes = s.TotalMinutes / n
	}
}
