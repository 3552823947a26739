package http

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iBelieve/anki-bible-stats-server/internal/database"
	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	sources faithstats.Sources
	version string
}

func NewHealthController(sources faithstats.Sources, version string) *HealthController {
	return &HealthController{
		sources: sources,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	check := func(name string, err error) {
		if err != nil {
			checks[name] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks[name] = "ok"
		}
	}

	check("anki_database", pingDatabase(h.sources.AnkiDBPath))
	check("koreader_database", pingDatabase(h.sources.KOReaderDBPath))
	check("prayer_database", pingDatabase(h.sources.PrayerDBPath))

	// The Arc export is optional
	if h.sources.ArcExportPath != "" {
		check("arc_export", statDirectory(h.sources.ArcExportPath))
	} else {
		checks["arc_export"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// pingDatabase verifies an SQLite database can be opened read-only.
func pingDatabase(path string) error {
	db, err := database.OpenReadOnly(path)
	if err != nil {
		return err
	}
	return db.Close()
}

// statDirectory verifies a directory exists.
func statDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
