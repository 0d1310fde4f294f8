package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"pump_scanner/internal/detector"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
)

// Config — все настройки сканера. Источник: yaml-файл из configs/
// плюс переопределение любого значения через окружение.
type Config struct {
	Telegram struct {
		Token string `yaml:"token"`
	} `yaml:"telegram"`

	// Standalone: работать без Telegram-токена, сигналы только в лог.
	Standalone bool `yaml:"standalone"`

	Service struct {
		Host       string `yaml:"host"`
		HealthPort int    `yaml:"health_port"`
	} `yaml:"service"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	// Рынок
	QuoteCurrency string `yaml:"quote_currency"` // USDT
	Timeframe     string `yaml:"timeframe"`      // 5 = 5m у Bybit
	CandleLimit   int    `yaml:"candle_limit"`   // длина окна

	// Цикл сканирования
	ScanInterval     time.Duration `yaml:"-"` // SCAN_INTERVAL
	RateLimitBackoff time.Duration `yaml:"-"` // RATE_LIMIT_BACKOFF
	Cooldown         time.Duration `yaml:"-"` // SIGNAL_COOLDOWN

	// Пресет детектора: conservative | permissive.
	// Отдельные поля ниже перекрывают значения пресета.
	Preset string `yaml:"preset"`

	PriceChangeThreshold  float64 `yaml:"price_change_threshold"`
	VolumeZScoreThreshold float64 `yaml:"volume_zscore_threshold"`
	MinQuoteVolume        float64 `yaml:"min_quote_volume"`
	PriceLag              int     `yaml:"price_lag"`
	MinCandles            int     `yaml:"min_candles"`
	ZScorePeriod          int     `yaml:"zscore_period"`

	RequireVolumeConfirmation *bool   `yaml:"require_volume_confirmation"`
	UseGrowthRatio            *bool   `yaml:"use_growth_ratio"`
	GrowthRatioThreshold      float64 `yaml:"growth_ratio_threshold"`
	UseRSIFilter              *bool   `yaml:"use_rsi_filter"`
	RSIPeriod                 int     `yaml:"rsi_period"`
	RSIHigh                   float64 `yaml:"rsi_high"`
	RSILow                    float64 `yaml:"rsi_low"`
}

func NewConfig() (*Config, error) {
	config := Config{
		QuoteCurrency: getenvDefault("QUOTE_CURRENCY", "USDT"),
		Timeframe:     getenvDefault("TIMEFRAME", "5"),
		CandleLimit:   intFromEnv("CANDLE_LIMIT", 25),

		ScanInterval:     durationFromEnv("SCAN_INTERVAL", "30s"),
		RateLimitBackoff: durationFromEnv("RATE_LIMIT_BACKOFF", "5s"),
		Cooldown:         durationFromEnv("SIGNAL_COOLDOWN", "15m"),

		Preset: getenvDefault("PRESET", "conservative"),

		PriceChangeThreshold:  floatFromEnv("PRICE_CHANGE_THRESHOLD", 0),
		VolumeZScoreThreshold: floatFromEnv("VOLUME_ZSCORE_THRESHOLD", 0),
		MinQuoteVolume:        floatFromEnv("MIN_QUOTE_VOLUME", -1),
		GrowthRatioThreshold:  floatFromEnv("GROWTH_RATIO_THRESHOLD", 0),
		RSIHigh:               floatFromEnv("RSI_HIGH", 0),
		RSILow:                floatFromEnv("RSI_LOW", -1),
	}
	config.Standalone = boolFromEnv("STANDALONE", false)
	config.Service.Host = getenvDefault("HEALTH_HOST", "")
	config.Service.HealthPort = intFromEnv("HEALTH_PORT", 8080)
	config.Jaeger.Host = getenvDefault("JAEGER_HOST", "")
	config.Jaeger.Port = intFromEnv("JAEGER_PORT", 6831)

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err == nil {
		defer func() {
			_ = file.Close()
		}()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil {
			log.Fatalf("Failed to decode config file: %v", err)
		}
	} else {
		// без файла живём на дефолтах и окружении
		log.Printf("config file %q not found, using env/defaults", configFileName)
	}

	token := os.Getenv(tokenTelegramENV)
	if token != "" {
		config.Telegram.Token = token
	}

	return &config, nil
}

// DetectorConfig собирает конфиг детектора: берём именованный пресет
// и накатываем поверх только явно заданные поля.
func (c *Config) DetectorConfig() detector.Config {
	cfg := detector.ByName(c.Preset)

	if c.PriceChangeThreshold > 0 {
		cfg.PriceChangeThreshold = c.PriceChangeThreshold
	}
	if c.VolumeZScoreThreshold > 0 {
		cfg.VolumeZScoreThreshold = c.VolumeZScoreThreshold
	}
	if c.MinQuoteVolume >= 0 {
		cfg.MinQuoteVolume = c.MinQuoteVolume
	}
	if c.PriceLag > 0 {
		cfg.PriceLag = c.PriceLag
	}
	if c.MinCandles > 0 {
		cfg.MinCandles = c.MinCandles
	}
	if c.ZScorePeriod > 0 {
		cfg.ZScorePeriod = c.ZScorePeriod
	}
	if c.RequireVolumeConfirmation != nil {
		cfg.RequireVolumeConfirmation = *c.RequireVolumeConfirmation
	}
	if c.UseGrowthRatio != nil {
		cfg.UseGrowthRatio = *c.UseGrowthRatio
	}
	if c.GrowthRatioThreshold > 0 {
		cfg.GrowthRatioThreshold = c.GrowthRatioThreshold
	}
	if c.UseRSIFilter != nil {
		cfg.UseRSIFilter = *c.UseRSIFilter
	}
	if c.RSIPeriod > 0 {
		cfg.RSIPeriod = c.RSIPeriod
	}
	if c.RSIHigh > 0 {
		cfg.RSIHigh = c.RSIHigh
	}
	if c.RSILow >= 0 {
		cfg.RSILow = c.RSILow
	}
	return cfg
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if v == "1" || v == "true" || v == "TRUE" {
			return true
		}
		if v == "0" || v == "false" || v == "FALSE" {
			return false
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
