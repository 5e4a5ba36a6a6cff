package components

import (
	"transferpoints/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBonusQueries,
		queries.NewMatrixQueries,
		queries.NewDashboardQueries,
	),
)
