package models

import "time"

// Direction — направление движения.
type Direction string

const (
	DirectionPump Direction = "PUMP"
	DirectionDump Direction = "DUMP"
)

// Tier — грубая оценка силы сигнала для презентации.
type Tier string

const (
	TierStrong Tier = "STRONG"
	TierMedium Tier = "MEDIUM"
	TierWeak   Tier = "WEAK"
)

// Signal — ответ детектора. Иммутабелен после создания,
// потребляется ровно один раз нотификационным путём.
type Signal struct {
	Symbol            string
	Direction         Direction
	PriceChangePct    float64
	VolumeZScore      float64
	VolumeUSDT        float64
	RSI               float64 // заполняется только если RSI-фильтр активен
	VolumeGrowthRatio float64 // заполняется только если growth-фильтр активен
	Price             float64
	Tier              Tier
	Confidence        int
	DetectedAt        time.Time
}
