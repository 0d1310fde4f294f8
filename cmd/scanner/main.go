package main

import (
	"context"
	"log"

	"go.uber.org/fx"

	"pump_scanner/internal/modules/bybit"
	"pump_scanner/internal/modules/config"
	"pump_scanner/internal/modules/health"
	telegram "pump_scanner/internal/modules/telegram_bot"
	"pump_scanner/internal/runner"
	"pump_scanner/pkg/logger"
	"pump_scanner/pkg/tracing"
)

func main() {
	logger.SetServiceName("pump-scanner")
	tracing.SetServiceName("pump-scanner")
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		bybit.Module(),
		telegram.Module(),
		health.Module(),
		runner.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
	)
	app.Run()
}
