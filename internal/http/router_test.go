package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iBelieve/anki-bible-stats-server/internal/ankistats"
	"github.com/iBelieve/anki-bible-stats-server/internal/arcstats"
	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

const testAPIKey = "test-api-key"

func serveRequest(router http.Handler, method, path string, authorized bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testAPIKey)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealthAndPing(t *testing.T) {
	sources := setupSources(t)
	router := NewRouter(RouterConfig{Sources: sources, APIKey: testAPIKey, Version: "1.0.0"})

	t.Run("health is public and healthy with fixture sources", func(t *testing.T) {
		w := serveRequest(router, "GET", "/health", false)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "1.0.0", resp.Version)
		assert.Equal(t, "ok", resp.Checks["anki_database"])
		assert.Equal(t, "ok", resp.Checks["koreader_database"])
		assert.Equal(t, "ok", resp.Checks["prayer_database"])
		assert.Equal(t, "ok", resp.Checks["arc_export"])
	})

	t.Run("health reports a missing database", func(t *testing.T) {
		broken := sources
		broken.PrayerDBPath = "/nonexistent/prayer.db"
		brokenRouter := NewRouter(RouterConfig{Sources: broken, APIKey: testAPIKey})

		w := serveRequest(brokenRouter, "GET", "/health", false)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Contains(t, resp.Checks["prayer_database"], "error")
	})

	t.Run("ping is public", func(t *testing.T) {
		w := serveRequest(router, "GET", "/ping", false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pong")
	})
}

func TestRouterRequiresAPIKey(t *testing.T) {
	sources := setupSources(t)
	router := NewRouter(RouterConfig{Sources: sources, APIKey: testAPIKey})

	paths := []string{
		"/api/anki/books",
		"/api/faith/today",
		"/api/faith/daily",
		"/api/faith/weekly",
		"/api/arc/top-places",
	}
	for _, path := range paths {
		w := serveRequest(router, "GET", path, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAnkiBooksEndpoint(t *testing.T) {
	sources := setupSources(t)
	router := NewRouter(RouterConfig{Sources: sources, APIKey: testAPIKey})

	w := serveRequest(router, "GET", "/api/anki/books", true)
	require.Equal(t, http.StatusOK, w.Code)

	var stats ankistats.BibleStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	assert.Len(t, stats.OldTestament.BookStats, 39)
	assert.Len(t, stats.NewTestament.BookStats, 27)
	// The fixture has one mature John 3:16 card
	assert.Equal(t, int64(1), stats.NewTestament.MaturePassages)
}

func TestFaithEndpoints(t *testing.T) {
	sources := setupSources(t)
	router := NewRouter(RouterConfig{Sources: sources, APIKey: testAPIKey})

	t.Run("today", func(t *testing.T) {
		w := serveRequest(router, "GET", "/api/faith/today", true)
		require.Equal(t, http.StatusOK, w.Code)

		var stats faithstats.TodayStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.InDelta(t, 2.0, stats.AnkiMinutes, 0.001)
		assert.InDelta(t, 5.0, stats.ReadingMinutes, 0.001)
		assert.InDelta(t, 10.0, stats.PrayerMinutes, 0.001)
		assert.InDelta(t, 17.0, stats.TotalMinutes, 0.001)
	})

	t.Run("today uses a warm cache", func(t *testing.T) {
		cache := NewTodayCache(sources)
		require.NoError(t, cache.Refresh())

		cachedRouter := NewRouter(RouterConfig{Sources: sources, APIKey: testAPIKey, TodayCache: cache})
		w := serveRequest(cachedRouter, "GET", "/api/faith/today", true)
		require.Equal(t, http.StatusOK, w.Code)

		var stats faithstats.TodayStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.InDelta(t, 17.0, stats.TotalMinutes, 0.001)
	})

	t.Run("daily", func(t *testing.T) {
		w := serveRequest(router, "GET", "/api/faith/daily", true)
		require.Equal(t, http.StatusOK, w.Code)

		var stats faithstats.DailyStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		require.Len(t, stats.Days, 30)
		assert.InDelta(t, 2.0, stats.Days[29].AnkiMinutes, 0.001)
		assert.InDelta(t, 17.0, stats.Summary.TotalMinutes, 0.001)
		assert.Equal(t, int64(1), stats.Summary.AnkiTotalMaturedPassages)
	})

	t.Run("weekly includes church minutes", func(t *testing.T) {
		w := serveRequest(router, "GET", "/api/faith/weekly", true)
		require.Equal(t, http.StatusOK, w.Code)

		var stats faithstats.WeeklyStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		require.Len(t, stats.Weeks, 12)

		churchTotal := 0.0
		for _, week := range stats.Weeks {
			churchTotal += week.ChurchMinutes
		}
		assert.InDelta(t, 60.0, churchTotal, 0.001)
	})
}

func TestTopPlacesEndpoint(t *testing.T) {
	sources := setupSources(t)
	router := NewRouter(RouterConfig{Sources: sources, APIKey: testAPIKey})

	t.Run("returns places sorted by time", func(t *testing.T) {
		w := serveRequest(router, "GET", "/api/arc/top-places", true)
		require.Equal(t, http.StatusOK, w.Code)

		var places []arcstats.PlaceStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &places))
		require.Len(t, places, 1)
		assert.Equal(t, "Grace Church", places[0].Name)
		assert.InDelta(t, 1.0, places[0].Hours, 0.001)
	})

	t.Run("rejects an invalid limit", func(t *testing.T) {
		w := serveRequest(router, "GET", "/api/arc/top-places?limit=abc", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("fails cleanly when not configured", func(t *testing.T) {
		unconfigured := sources
		unconfigured.ArcExportPath = ""
		r := NewRouter(RouterConfig{Sources: unconfigured, APIKey: testAPIKey})

		w := serveRequest(r, "GET", "/api/arc/top-places", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
