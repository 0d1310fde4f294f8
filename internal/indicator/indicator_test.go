package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeZScore_ShortHistory(t *testing.T) {
	// истории меньше периода — нет мнения
	assert.Equal(t, 0.0, VolumeZScore(nil, 20))
	assert.Equal(t, 0.0, VolumeZScore([]float64{10, 12, 11}, 20))
	assert.Equal(t, 0.0, VolumeZScore(make([]float64, 19), 20))
}

func TestVolumeZScore_ZeroVariance(t *testing.T) {
	volumes := make([]float64, 30)
	for i := range volumes {
		volumes[i] = 42.0
	}
	assert.Equal(t, 0.0, VolumeZScore(volumes, 20))
}

func TestVolumeZScore_Spike(t *testing.T) {
	// 19 баров по 10, последний 30: mean=11, std=sqrt((19*1+19^2)/20)=sqrt(19)
	volumes := make([]float64, 20)
	for i := range volumes {
		volumes[i] = 10
	}
	volumes[19] = 30
	z := VolumeZScore(volumes, 20)
	assert.InDelta(t, 4.3588, z, 0.001)
}

func TestPriceChangePct_ShortHistory(t *testing.T) {
	assert.Equal(t, 0.0, PriceChangePct([]float64{100}, 1))
	assert.Equal(t, 0.0, PriceChangePct([]float64{100, 101}, 2))
}

func TestPriceChangePct_ZeroReference(t *testing.T) {
	assert.Equal(t, 0.0, PriceChangePct([]float64{0, 100}, 1))
}

func TestPriceChangePct_Basic(t *testing.T) {
	assert.InDelta(t, 6.0, PriceChangePct([]float64{100, 106}, 1), 1e-9)
	assert.InDelta(t, -5.0, PriceChangePct([]float64{100, 98, 95}, 2), 1e-9)
}

func TestPriceChangePct_ScaleInvariant(t *testing.T) {
	closes := []float64{100, 102, 99, 104, 110}
	scaled := make([]float64, len(closes))
	for i, c := range closes {
		scaled[i] = c * 1234.5
	}
	assert.InDelta(t, PriceChangePct(closes, 2), PriceChangePct(scaled, 2), 1e-9)
}

func TestRSI_InsufficientData(t *testing.T) {
	assert.Equal(t, 50.0, RSI([]float64{1, 2, 3}, 14))
	assert.Equal(t, 50.0, RSI(nil, 14))
}

func TestRSI_MonotonicUp(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	// без единого падения средний убыток равен нулю — насыщение
	assert.Equal(t, 100.0, RSI(closes, 14))
}

func TestRSI_MonotonicDown(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	rsi := RSI(closes, 14)
	assert.Less(t, rsi, 1.0)
	assert.GreaterOrEqual(t, rsi, 0.0)
}

func TestRSI_Bounded(t *testing.T) {
	closes := []float64{44, 44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10, 45.42,
		45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03, 46.41, 46.22}
	rsi := RSI(closes, 14)
	assert.Greater(t, rsi, 0.0)
	assert.Less(t, rsi, 100.0)
}
