package bootstrap

import (
	"log/slog"

	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/config"
	"hotel-front-desk/internal/usecase/shared"

	"go.uber.org/fx"
)

var HotelAPIModule = fx.Module("hotelapi",
	fx.Provide(
		fx.Annotate(
			NewHotelAPIClient,
			fx.As(new(shared.HotelGateway)),
		),
	),
)

func NewHotelAPIClient(cfg config.Config, logger *slog.Logger) (*hotelapi.Client, error) {
	return hotelapi.NewClient(cfg.HotelAPI, nil, logger)
}
