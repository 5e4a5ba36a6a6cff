package bootstrap

import (
	"transferpoints/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
