// Package indicator — чистые функции над числовыми рядами свечей.
// Без состояния, без I/O: одинаковый вход всегда даёт одинаковый выход.
package indicator

import "math"

// VolumeZScore — Z-score последнего объёма относительно последних period значений.
// Меньше period значений или нулевая дисперсия → 0 (нет данных / нет всплеска).
func VolumeZScore(volumes []float64, period int) float64 {
	if period <= 0 || len(volumes) < period {
		return 0
	}
	recent := volumes[len(volumes)-period:]

	var sum float64
	for _, v := range recent {
		sum += v
	}
	mean := sum / float64(period)

	var variance float64
	for _, v := range recent {
		d := v - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(period))
	if std == 0 {
		return 0
	}
	return (volumes[len(volumes)-1] - mean) / std
}

// PriceChangePct — изменение цены закрытия в процентах относительно свечи
// lag позиций назад. Недостаточно свечей или нулевая опорная цена → 0.
func PriceChangePct(closes []float64, lag int) float64 {
	if lag <= 0 || len(closes) < lag+1 {
		return 0
	}
	current := closes[len(closes)-1]
	reference := closes[len(closes)-1-lag]
	if reference == 0 {
		return 0
	}
	return (current - reference) / reference * 100
}

// RSI — классический индекс относительной силы Уайлдера.
// Меньше period+1 закрытий → 50 (нейтрально, не тревожно).
// Нулевой средний убыток → 100 (насыщение, не ошибка).
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50.0
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// сглаживание Уайлдера по остатку ряда
	k := float64(period-1) / float64(period)
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = avgGain*k + gain/float64(period)
		avgLoss = avgLoss*k + loss/float64(period)
	}

	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
