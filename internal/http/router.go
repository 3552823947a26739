package http

import (
	"log"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate dependencies
	health := NewHealthController(cfg.Sources, cfg.Version)
	booksController := NewBooksController(cfg.Sources.AnkiDBPath)
	faithController := NewFaithController(cfg.Sources, cfg.TodayCache)
	placesController := NewPlacesController(cfg.Sources.ArcExportPath)

	// Health endpoints (unauthenticated)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// All stats endpoints require the API key when one is configured
	api := router.Group("/api")
	if cfg.APIKey != "" {
		api.Use(APIKeyMiddleware(cfg.APIKey))
	} else {
		log.Printf("WARNING: API key is not set. Stats endpoints will be unauthenticated. Set 'API_KEY' environment variable to enable.")
	}

	// Anki memorization endpoints
	api.GET("/anki/books", booksController.GetBooks)

	// Combined faith activity endpoints
	api.GET("/faith/today", faithController.GetToday)
	api.GET("/faith/daily", faithController.GetDaily)
	api.GET("/faith/weekly", faithController.GetWeekly)

	// Location endpoints
	api.GET("/arc/top-places", placesController.GetTopPlaces)

	return router
}
