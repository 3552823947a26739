package config

const (
	// DefaultPort is the port the HTTP server listens on by default
	DefaultPort = 3000

	// DefaultReadingTitlePattern matches Bible titles in the KOReader
	// statistics database
	DefaultReadingTitlePattern = "%bible%"

	// DefaultTodayCacheSchedule refreshes the cached today stats every
	// 15 minutes
	DefaultTodayCacheSchedule = "*/15 * * * *"
)
