package bootstrap

import (
	"hotel-front-desk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	HotelAPIModule,
	PubSubModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
