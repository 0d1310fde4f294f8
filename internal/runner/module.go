package runner

import (
	"context"

	"go.uber.org/fx"

	"pump_scanner/internal/modules/bybit/service"
	"pump_scanner/internal/modules/config"
	healthsvc "pump_scanner/internal/modules/health/service"
	"pump_scanner/internal/notify"
)

func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(
			func(cfg *config.Config, client *service.Client, n notify.Notifier, state *healthsvc.State) *Runner {
				return New(cfg, client, n, state)
			},
		),
		fx.Invoke(func(
			lc fx.Lifecycle,
			r *Runner,
			ctx context.Context,
		) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go r.Run(ctx)
					return nil
				},
			})
		}),
	)
}
