package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iBelieve/anki-bible-stats-server/internal/arcstats"
)

const defaultTopPlacesLimit = 10

// PlacesController serves location statistics from an Arc Timeline export.
type PlacesController struct {
	exportPath string
}

func NewPlacesController(exportPath string) *PlacesController {
	return &PlacesController{exportPath: exportPath}
}

// GetTopPlaces returns the places with the most time spent over the last six
// months. The limit query parameter caps the result count (default 10).
func (pc *PlacesController) GetTopPlaces(c *gin.Context) {
	if pc.exportPath == "" {
		respondBadRequest(c, "location stats are not configured")
		return
	}

	limit, ok := parseQueryInt(c, "limit", defaultTopPlacesLimit)
	if !ok {
		return
	}

	places, err := arcstats.TopPlaces(pc.exportPath, limit)
	if err != nil {
		respondInternalError(c, err, "top places")
		return
	}
	c.JSON(http.StatusOK, places)
}
