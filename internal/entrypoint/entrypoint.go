package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iBelieve/anki-bible-stats-server/internal/config"
	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
	http_controllers "github.com/iBelieve/anki-bible-stats-server/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server with
	// the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the refresh schedule)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Anki Bible Stats Server v%s", version)

	requireFile("Anki database", "ANKI_DATABASE_PATH", cfg.Anki.DatabasePath)
	requireFile("KOReader database", "KOREADER_DATABASE_PATH", cfg.Reading.DatabasePath)
	requireFile("Prayer database", "PROSEUCHE_DATABASE_PATH", cfg.Prayer.DatabasePath)

	if cfg.Arc.ExportPath != "" {
		if info, err := os.Stat(cfg.Arc.ExportPath); err != nil || !info.IsDir() {
			log.Fatalf("Arc export directory %s does not exist", cfg.Arc.ExportPath)
		}
	} else {
		log.Printf("WARNING: Arc export path is not set. Location stats will be disabled. Set 'ARC_EXPORT_PATH' environment variable to enable.")
	}

	sources := faithstats.Sources{
		AnkiDBPath:          cfg.Anki.DatabasePath,
		KOReaderDBPath:      cfg.Reading.DatabasePath,
		PrayerDBPath:        cfg.Prayer.DatabasePath,
		ArcExportPath:       cfg.Arc.ExportPath,
		ReadingTitlePattern: cfg.Reading.TitlePattern,
	}

	// Start the periodic today stats refresh if enabled
	var todayCache *http_controllers.TodayCache
	if cfg.TodayCache.Enabled {
		todayCache = http_controllers.NewTodayCache(sources)
		if err := todayCache.Start(cfg.TodayCache.Schedule); err != nil {
			log.Fatalf("Failed to start today stats refresh schedule %q: %v", cfg.TodayCache.Schedule, err)
		}
		log.Printf("Today stats cache enabled (schedule %q)", cfg.TodayCache.Schedule)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Sources:    sources,
		APIKey:     cfg.Auth.APIKey,
		Version:    version,
		TodayCache: todayCache,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if todayCache != nil {
			todayCache.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}

// requireFile aborts startup when a required database path is unset or
// missing.
func requireFile(label, envVar, path string) {
	if path == "" {
		log.Fatalf("%s path is not set. Set '%s' environment variable.", label, envVar)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("%s %s does not exist", label, path)
	}
}
