package http

import (
	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Data sources the stats endpoints read from
	Sources faithstats.Sources

	// Bearer token for /api routes; empty disables authentication
	APIKey string

	// Application info
	Version string

	// Pre-computed today stats (optional)
	TodayCache *TodayCache
}
