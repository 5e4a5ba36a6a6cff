package bootstrap

import (
	"transferpoints/internal/pkg/config"
	"transferpoints/internal/usecase/queries"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewQuerySettings,
	),
)

func NewQuerySettings(cfg config.Config) queries.Settings {
	return queries.Settings{
		TopLimit:     cfg.Dashboard.TopLimit,
		RecentLimit:  cfg.Dashboard.RecentLimit,
		UrgentWithin: cfg.Dashboard.UrgentWithin,
	}
}
