package arcstats

import (
	"sort"
	"strings"
	"time"

	"github.com/iBelieve/anki-bible-stats-server/internal/dateutil"
)

// WeekStats holds church attendance time for a single Sunday-based week.
type WeekStats struct {
	// Week start date (Sunday) in YYYY-MM-DD format.
	WeekStart string `json:"week_start"`
	// Time spent at church in minutes.
	Minutes float64 `json:"minutes"`
}

// PlaceStats summarizes time spent at one place.
type PlaceStats struct {
	Name   string  `json:"name"`
	Visits int     `json:"visits"`
	Hours  float64 `json:"hours"`
}

// ChurchWeeklyMinutes returns time spent at places whose name contains
// "church" for each of the last 12 weeks, oldest first. Weeks without a
// church visit have 0 minutes.
func ChurchWeeklyMinutes(exportPath string) ([]WeekStats, error) {
	period, err := dateutil.Last12Weeks()
	if err != nil {
		return nil, err
	}

	items, err := LoadAllItemsWithPlaces(exportPath)
	if err != nil {
		return nil, err
	}

	weeklyMinutes := make(map[string]float64)
	for _, iwp := range items {
		if !iwp.Item.IsVisit() || iwp.Place == nil {
			continue
		}
		if !strings.Contains(strings.ToLower(iwp.Place.Name), "church") {
			continue
		}

		weekStart, err := dateutil.WeekStringFromMs(iwp.Item.StartTime().UnixMilli())
		if err != nil {
			return nil, err
		}
		weeklyMinutes[weekStart] += iwp.Item.DurationSeconds() / 60.0
	}

	return dateutil.BuildResults(period, weeklyMinutes, func(date string, minutes float64) WeekStats {
		return WeekStats{WeekStart: date, Minutes: minutes}
	}), nil
}

// TopPlaces returns the n places with the most time spent over the last six
// months, sorted by hours descending.
func TopPlaces(exportPath string, n int) ([]PlaceStats, error) {
	items, err := LoadAllItemsWithPlaces(exportPath)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, -6, 0)

	type tally struct {
		visits  int
		seconds float64
	}
	byPlace := make(map[string]*tally)

	for _, iwp := range items {
		if !iwp.Item.IsVisit() || iwp.Place == nil {
			continue
		}
		if iwp.Item.StartTime().Before(cutoff) {
			continue
		}

		t := byPlace[iwp.Place.Name]
		if t == nil {
			t = &tally{}
			byPlace[iwp.Place.Name] = t
		}
		t.visits++
		t.seconds += iwp.Item.DurationSeconds()
	}

	stats := make([]PlaceStats, 0, len(byPlace))
	for name, t := range byPlace {
		stats = append(stats, PlaceStats{
			Name:   name,
			Visits: t.visits,
			Hours:  t.seconds / 3600.0,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Hours != stats[j].Hours {
			return stats[i].Hours > stats[j].Hours
		}
		return stats[i].Name < stats[j].Name
	})

	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats, nil
}
