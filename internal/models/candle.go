package models

import "time"

// Candle — закрытая OHLCV-свеча одного инструмента.
// Окно свечей всегда хронологическое, самая свежая — последняя.
type Candle struct {
	OpenTime time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64 // объём в базовой валюте
	Turnover float64 // объём в котируемой валюте (USDT)
}

// Closes возвращает последовательность цен закрытия окна.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Volumes возвращает последовательность объёмов окна.
func Volumes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
	}
	return out
}
