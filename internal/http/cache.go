package http

import (
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// TodayCache keeps a periodically refreshed copy of today's combined stats
// so the hot /api/faith/today endpoint doesn't reopen three databases on
// every request.
type TodayCache struct {
	sources faithstats.Sources

	mu    sync.RWMutex
	stats faithstats.TodayStats
	warm  bool

	cron *cron.Cron
}

func NewTodayCache(sources faithstats.Sources) *TodayCache {
	return &TodayCache{sources: sources}
}

// Get returns the cached stats. The second return is false until the first
// successful refresh.
func (tc *TodayCache) Get() (faithstats.TodayStats, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.stats, tc.warm
}

// Refresh recomputes today's stats. A failed refresh keeps the previous
// value.
func (tc *TodayCache) Refresh() error {
	stats, err := faithstats.GetTodayStats(tc.sources)
	if err != nil {
		return err
	}

	tc.mu.Lock()
	tc.stats = stats
	tc.warm = true
	tc.mu.Unlock()
	return nil
}

// Start refreshes the cache once immediately, then on the given cron
// schedule.
func (tc *TodayCache) Start(schedule string) error {
	if err := tc.Refresh(); err != nil {
		log.Printf("WARNING: Initial today stats refresh failed: %v", err)
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := tc.Refresh(); err != nil {
			log.Printf("WARNING: Today stats refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	tc.cron = c
	return nil
}

// Stop halts the refresh schedule. Safe to call when Start was never called.
func (tc *TodayCache) Stop() {
	if tc.cron != nil {
		tc.cron.Stop()
	}
}
