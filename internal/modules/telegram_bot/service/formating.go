package service

import (
	"fmt"
	"strings"

	"pump_scanner/internal/models"
)

// StrengthLabel — человекочитаемая сила сигнала.
func StrengthLabel(tier models.Tier) string {
	switch tier {
	case models.TierStrong:
		return "💥 СИЛЬНЫЙ"
	case models.TierMedium:
		return "🚨 СРЕДНИЙ"
	default:
		return "📈 СЛАБЫЙ"
	}
}

// FormatSignal собирает HTML-сообщение по сигналу.
func FormatSignal(sig *models.Signal) string {
	ticker := sig.Symbol
	if i := strings.Index(ticker, "USDT"); i > 0 {
		ticker = ticker[:i]
	}

	emoji, direction, color := "🚀", "ВВЕРХ", "🟢"
	if sig.Direction == models.DirectionDump {
		emoji, direction, color = "💥", "ВНИЗ", "🔴"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>ПАМП/ДАМП СИГНАЛ (5min)</b> %s\n\n", emoji, emoji)
	fmt.Fprintf(&b, "%s <b>%s</b> | %s\n", color, ticker, direction)
	fmt.Fprintf(&b, "📊 Изменение: <b>%+.1f%%</b>\n", sig.PriceChangePct)
	fmt.Fprintf(&b, "📈 Объем: <b>Z=%.1f</b>\n", sig.VolumeZScore)
	fmt.Fprintf(&b, "💪 Сила: <b>%s</b>\n\n", StrengthLabel(sig.Tier))
	fmt.Fprintf(&b, "⏰ Время: %s", sig.DetectedAt.Format("15:04:05"))
	return b.String()
}
