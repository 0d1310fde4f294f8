// preset рендерит штатный пресет детектора в yaml-конфиг сканера:
//
//	go run ./cmd/preset -name permissive -out configs/values_local.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"pump_scanner/internal/detector"
)

func renderConfig(name string, cfg detector.Config) ([]byte, error) {
	engine := viper.New()
	engine.Set("preset", name)
	engine.Set("quote_currency", "USDT")
	engine.Set("timeframe", "5")
	engine.Set("candle_limit", 25)

	engine.Set("price_change_threshold", cfg.PriceChangeThreshold)
	engine.Set("volume_zscore_threshold", cfg.VolumeZScoreThreshold)
	engine.Set("min_quote_volume", cfg.MinQuoteVolume)
	engine.Set("price_lag", cfg.PriceLag)
	engine.Set("min_candles", cfg.MinCandles)
	engine.Set("zscore_period", cfg.ZScorePeriod)
	engine.Set("require_volume_confirmation", cfg.RequireVolumeConfirmation)
	engine.Set("use_growth_ratio", cfg.UseGrowthRatio)
	engine.Set("use_rsi_filter", cfg.UseRSIFilter)
	if cfg.UseGrowthRatio {
		engine.Set("growth_ratio_threshold", cfg.GrowthRatioThreshold)
	}
	if cfg.UseRSIFilter {
		engine.Set("rsi_period", cfg.RSIPeriod)
		engine.Set("rsi_high", cfg.RSIHigh)
		engine.Set("rsi_low", cfg.RSILow)
	}

	bs, err := yaml.Marshal(engine.AllSettings())
	if err != nil {
		return nil, errors.Wrap(err, "marshal config to yaml")
	}
	return bs, nil
}

func main() {
	name := flag.String("name", "conservative", "пресет: conservative | permissive")
	out := flag.String("out", "", "файл назначения; пусто — stdout")
	flag.Parse()

	content, err := renderConfig(*name, detector.ByName(*name))
	if err != nil {
		panic(fmt.Errorf("can't render config: %w", err))
	}

	if *out == "" {
		fmt.Print(string(content))
		return
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		panic(fmt.Errorf("write %s: %w", *out, err))
	}
	fmt.Printf("%s file complete\n", *out)
}
