package bootstrap

import (
	"hotel-front-desk/internal/pkg/pubsub"
	"hotel-front-desk/internal/usecase/shared"

	"go.uber.org/fx"
)

var PubSubModule = fx.Module("pubsub",
	fx.Provide(
		pubsub.NewBus,
		func(bus *pubsub.Bus) shared.Publisher { return bus },
	),
)
