// Package detector — ядро сканера: правила, превращающие окно свечей
// в решение PUMP/DUMP с оценкой силы, плюс кулдаун по инструментам.
package detector

import (
	"math"
	"time"

	"pump_scanner/internal/indicator"
	"pump_scanner/internal/models"
)

// Config — все пороги и фильтры детектора. Два готовых пресета
// ниже, но любая комбинация значений между ними допустима.
type Config struct {
	MinCandles int // минимальная длина окна для анализа

	PriceLag             int     // сдвиг в свечах для расчёта изменения цены
	PriceChangeThreshold float64 // минимальное движение в %, чтобы вообще смотреть

	ZScorePeriod              int     // период Z-score объёма
	VolumeZScoreThreshold     float64 // минимальный Z-score всплеска
	MinQuoteVolume            float64 // минимальный объём текущего бара в USDT
	RequireVolumeConfirmation bool    // требовать подтверждение объёмом

	// Эвристики пермиссивного режима. Конкретные отсечки не несут
	// статистического смысла — только настройка.
	UseGrowthRatio       bool    // avg(3)/avg(10) как альтернатива Z-score (логическое ИЛИ)
	GrowthRatioThreshold float64 // например 1.8
	UseRSIFilter         bool    // отбрасывать перегретые/перепроданные движения
	RSIPeriod            int
	RSIHigh              float64 // например 85
	RSILow               float64 // например 15

	// Градация силы по |изменению цены|
	StrongPct        float64
	MediumPct        float64
	StrongConfidence int
	MediumConfidence int
	WeakConfidence   int
}

// Detector — классификатор одного окна. Состояния не держит,
// безопасен для конкурентного использования.
type Detector struct {
	cfg Config
}

func New(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Classify анализирует окно свечей инструмента и возвращает сигнал
// либо nil, если движения нет или какой-то из фильтров не прошёл.
// Недостаточно истории — это «нет мнения», а не ошибка; кривые данные
// (NaN/Inf в индикаторах) тоже глушатся в nil, чтобы один инструмент
// не ронял весь цикл сканирования.
func (d *Detector) Classify(symbol string, candles []models.Candle, now time.Time) *models.Signal {
	if len(candles) < d.cfg.MinCandles {
		return nil
	}

	closes := models.Closes(candles)
	volumes := models.Volumes(candles)
	current := candles[len(candles)-1]

	priceChange := indicator.PriceChangePct(closes, d.cfg.PriceLag)
	if !finite(priceChange) {
		return nil
	}

	var direction models.Direction
	switch {
	case priceChange >= d.cfg.PriceChangeThreshold:
		direction = models.DirectionPump
	case priceChange <= -d.cfg.PriceChangeThreshold:
		direction = models.DirectionDump
	default:
		return nil
	}

	// Z-score считаем по истории без текущего бара
	zscore := indicator.VolumeZScore(volumes[:len(volumes)-1], d.cfg.ZScorePeriod)
	if !finite(zscore) {
		return nil
	}

	// фильтр ликвидности: крупное движение на копеечном объёме не интересно
	if current.Turnover < d.cfg.MinQuoteVolume {
		return nil
	}

	growthRatio := 0.0
	if d.cfg.RequireVolumeConfirmation {
		confirmed := zscore >= d.cfg.VolumeZScoreThreshold
		if d.cfg.UseGrowthRatio {
			growthRatio = volumeGrowthRatio(volumes)
			if !finite(growthRatio) {
				return nil
			}
			// ИЛИ, не И: рост средней тоже считается подтверждением
			confirmed = confirmed || growthRatio >= d.cfg.GrowthRatioThreshold
		}
		if !confirmed {
			return nil
		}
	}

	rsi := 0.0
	if d.cfg.UseRSIFilter {
		rsi = indicator.RSI(closes, d.cfg.RSIPeriod)
		if !finite(rsi) {
			return nil
		}
		if rsi > d.cfg.RSIHigh || rsi < d.cfg.RSILow {
			return nil
		}
	}

	tier, confidence := d.grade(math.Abs(priceChange))

	return &models.Signal{
		Symbol:            symbol,
		Direction:         direction,
		PriceChangePct:    priceChange,
		VolumeZScore:      zscore,
		VolumeUSDT:        current.Turnover,
		RSI:               rsi,
		VolumeGrowthRatio: growthRatio,
		Price:             current.Close,
		Tier:              tier,
		Confidence:        confidence,
		DetectedAt:        now,
	}
}

func (d *Detector) grade(absChange float64) (models.Tier, int) {
	switch {
	case absChange >= d.cfg.StrongPct:
		return models.TierStrong, d.cfg.StrongConfidence
	case absChange >= d.cfg.MediumPct:
		return models.TierMedium, d.cfg.MediumConfidence
	default:
		return models.TierWeak, d.cfg.WeakConfidence
	}
}

// volumeGrowthRatio — средний объём последних 3 баров к среднему
// предыдущих 10. Если на знаменатель не хватает истории, подставляем
// числитель: нейтральное 1.0 вместо ложного всплеска.
func volumeGrowthRatio(volumes []float64) float64 {
	if len(volumes) < 3 {
		return 1.0
	}
	recent := mean(volumes[len(volumes)-3:])

	base := recent
	if len(volumes) >= 13 {
		base = mean(volumes[len(volumes)-13 : len(volumes)-3])
	}
	if base == 0 {
		return 1.0
	}
	return recent / base
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
