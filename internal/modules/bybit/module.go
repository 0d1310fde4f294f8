package bybit

import (
	"go.uber.org/fx"

	"pump_scanner/internal/modules/bybit/service"
)

func Module() fx.Option {
	return fx.Module("bybit",
		fx.Provide(
			service.NewClient,
		),
	)
}
