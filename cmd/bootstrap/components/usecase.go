package components

import (
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/usecase"
	"hotel-front-desk/internal/usecase/commands"
	"hotel-front-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewTransitionUseCase,
		commands.NewGuestUseCase,
		commands.NewBillingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewGuestQueries,
		queries.NewReservationQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
