package components

import (
	"transferpoints/internal/handler"
	"transferpoints/internal/handler/page"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		page.NewDashboardHandler,
		page.NewBonusHandler,
		page.NewMatrixHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
