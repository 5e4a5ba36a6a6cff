package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that must differ between deployments
// - default: Values common across all environments (timezone, limits, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,HEAD,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// CatalogConfig controls where fixtures are read from.
// An empty Dir means the fixtures embedded in the binary.
type CatalogConfig struct {
	Dir           string        `envconfig:"CATALOG_DIR"`
	Watch         bool          `envconfig:"CATALOG_WATCH" default:"false"`
	WatchDebounce time.Duration `envconfig:"CATALOG_WATCH_DEBOUNCE" default:"500ms"`
}

type DashboardConfig struct {
	TopLimit     int           `envconfig:"DASHBOARD_TOP_LIMIT" default:"6"`
	RecentLimit  int           `envconfig:"DASHBOARD_RECENT_LIMIT" default:"5"`
	UrgentWithin time.Duration `envconfig:"DASHBOARD_URGENT_WITHIN" default:"168h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Catalog.Watch && cfg.Catalog.Dir == "" {
		return Config{}, fmt.Errorf("CATALOG_WATCH requires CATALOG_DIR")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Catalog: CatalogConfig{
			WatchDebounce: 50 * time.Millisecond,
		},
		Dashboard: DashboardConfig{
			TopLimit:     6,
			RecentLimit:  5,
			UrgentWithin: 7 * 24 * time.Hour,
		},
	}
}
