package detector

// Два штатных пресета. Conservative ловит только резкие движения с
// обязательным всплеском объёма, Permissive мягче по порогам, но
// добавляет RSI-фильтр и альтернативное объёмное подтверждение.

// Conservative — движение за одну свечу, жёсткие пороги, без эвристик.
func Conservative() Config {
	return Config{
		MinCandles: 25,

		PriceLag:             1,
		PriceChangeThreshold: 5.0,

		ZScorePeriod:              20,
		VolumeZScoreThreshold:     3.0,
		MinQuoteVolume:            75000,
		RequireVolumeConfirmation: true,

		StrongPct:        8.0,
		MediumPct:        6.0,
		StrongConfidence: 90,
		MediumConfidence: 80,
		WeakConfidence:   70,
	}
}

// Permissive — движение за две свечи (10 минут на 5m), пониженные
// пороги, RSI-отсечка экстремумов и growth-ratio как ИЛИ-подтверждение.
func Permissive() Config {
	return Config{
		MinCandles: 25,

		PriceLag:             2,
		PriceChangeThreshold: 3.0,

		ZScorePeriod:              20,
		VolumeZScoreThreshold:     2.0,
		MinQuoteVolume:            25000,
		RequireVolumeConfirmation: true,

		UseGrowthRatio:       true,
		GrowthRatioThreshold: 1.8,
		UseRSIFilter:         true,
		RSIPeriod:            14,
		RSIHigh:              85,
		RSILow:               15,

		StrongPct:        8.0,
		MediumPct:        6.0,
		StrongConfidence: 90,
		MediumConfidence: 80,
		WeakConfidence:   70,
	}
}

// ByName возвращает пресет по имени из конфига; пустое имя и
// неизвестные значения трактуем как conservative.
func ByName(name string) Config {
	switch name {
	case "permissive":
		return Permissive()
	default:
		return Conservative()
	}
}
