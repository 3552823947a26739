package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Anki
		Reading
		Prayer
		Arc
		Auth
		TodayCache
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Anki struct {
		DatabasePath string
	}
	Reading struct {
		DatabasePath string
		TitlePattern string // SQL LIKE pattern matched against lowercased book titles
	}
	Prayer struct {
		DatabasePath string
	}
	Arc struct {
		ExportPath string // Root of an Arc Timeline JSON export; empty disables location stats
	}
	Auth struct {
		APIKey string // Bearer token for /api routes; empty disables authentication
	}
	TodayCache struct {
		Enabled  bool
		Schedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("anki_database_path", "")
	v.SetDefault("koreader_database_path", "")
	v.SetDefault("proseuche_database_path", "")
	v.SetDefault("arc_export_path", "")
	v.SetDefault("api_key", "")
	v.SetDefault("reading_title_pattern", DefaultReadingTitlePattern)
	v.SetDefault("today_cache_enabled", true)
	v.SetDefault("today_cache_schedule", DefaultTodayCacheSchedule)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Anki: Anki{
			DatabasePath: v.GetString("ANKI_DATABASE_PATH"),
		},
		Reading: Reading{
			DatabasePath: v.GetString("KOREADER_DATABASE_PATH"),
			TitlePattern: v.GetString("READING_TITLE_PATTERN"),
		},
		Prayer: Prayer{
			DatabasePath: v.GetString("PROSEUCHE_DATABASE_PATH"),
		},
		Arc: Arc{
			ExportPath: v.GetString("ARC_EXPORT_PATH"),
		},
		Auth: Auth{
			APIKey: v.GetString("API_KEY"),
		},
		TodayCache: TodayCache{
			Enabled:  v.GetBool("TODAY_CACHE_ENABLED"),
			Schedule: v.GetString("TODAY_CACHE_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
