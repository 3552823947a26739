package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// FaithController serves the combined faith activity reports.
type FaithController struct {
	sources    faithstats.Sources
	todayCache *TodayCache
}

func NewFaithController(sources faithstats.Sources, todayCache *TodayCache) *FaithController {
	return &FaithController{
		sources:    sources,
		todayCache: todayCache,
	}
}

// GetToday returns today's combined activity. When a cache is configured and
// warm, the cached value is served instead of hitting the databases.
func (fc *FaithController) GetToday(c *gin.Context) {
	if fc.todayCache != nil {
		if stats, ok := fc.todayCache.Get(); ok {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	stats, err := faithstats.GetTodayStats(fc.sources)
	if err != nil {
		respondInternalError(c, err, "today stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDaily returns combined per-day stats for the last 30 days.
func (fc *FaithController) GetDaily(c *gin.Context) {
	stats, err := faithstats.GetDailyStats(fc.sources)
	if err != nil {
		respondInternalError(c, err, "daily stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetWeekly returns combined per-week stats for the last 12 weeks.
func (fc *FaithController) GetWeekly(c *gin.Context) {
	stats, err := faithstats.GetWeeklyStats(fc.sources)
	if err != nil {
		respondInternalError(c, err, "weekly stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
