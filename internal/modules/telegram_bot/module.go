package telegram

import (
	"fmt"

	"go.uber.org/fx"

	"pump_scanner/internal/modules/config"
	"pump_scanner/internal/modules/telegram_bot/service"
	"pump_scanner/internal/notify"
)

// Module выбирает канал доставки. Без токена: в standalone-режиме
// сканируем со stdout-нотифайером, иначе честно падаем на старте
// с одним внятным сообщением.
func Module() fx.Option {
	return fx.Module("telegram",
		fx.Provide(
			func(cfg *config.Config) (notify.Notifier, error) {
				if cfg.Telegram.Token == "" {
					if cfg.Standalone {
						return notify.NewStdout(), nil
					}
					return nil, fmt.Errorf("TELEGRAM_TOKEN is not set (use standalone: true to scan without notifications)")
				}
				return service.NewTelegram(cfg.Telegram.Token)
			},
		),
	)
}
