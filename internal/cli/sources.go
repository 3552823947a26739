package cli

import (
	"flag"
	"fmt"

	"github.com/iBelieve/anki-bible-stats-server/internal/config"
	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// addSourceFlags registers the shared data source flags, defaulting to the
// environment configuration.
func addSourceFlags(fs *flag.FlagSet, src *faithstats.Sources) {
	cfg := config.NewConfig()

	fs.StringVar(&src.AnkiDBPath, "anki-db", cfg.Anki.DatabasePath, "Path to the Anki collection database (default $ANKI_DATABASE_PATH)")
	fs.StringVar(&src.KOReaderDBPath, "koreader-db", cfg.Reading.DatabasePath, "Path to the KOReader statistics database (default $KOREADER_DATABASE_PATH)")
	fs.StringVar(&src.PrayerDBPath, "prayer-db", cfg.Prayer.DatabasePath, "Path to the prayer app database (default $PROSEUCHE_DATABASE_PATH)")
	fs.StringVar(&src.ArcExportPath, "arc-export", cfg.Arc.ExportPath, "Path to an Arc Timeline export directory (default $ARC_EXPORT_PATH)")
	fs.StringVar(&src.ReadingTitlePattern, "title-pattern", cfg.Reading.TitlePattern, "SQL LIKE pattern matching Bible titles in the KOReader database")
}

// validateSources verifies the required database paths are set.
func validateSources(src *faithstats.Sources) error {
	if src.AnkiDBPath == "" {
		return fmt.Errorf("Anki database path not set (use -anki-db or ANKI_DATABASE_PATH)")
	}
	if src.KOReaderDBPath == "" {
		return fmt.Errorf("KOReader database path not set (use -koreader-db or KOREADER_DATABASE_PATH)")
	}
	if src.PrayerDBPath == "" {
		return fmt.Errorf("prayer database path not set (use -prayer-db or PROSEUCHE_DATABASE_PATH)")
	}
	return nil
}

// formatMinutes renders a minute count as "1h 23m" or "45m".
func formatMinutes(minutes float64) string {
	whole := int(minutes + 0.5)
	if whole >= 60 {
		return fmt.Sprintf("%dh %dm", whole/60, whole%60)
	}
	return fmt.Sprintf("%dm", whole)
}
