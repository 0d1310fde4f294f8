package runner

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"pump_scanner/internal/detector"
	"pump_scanner/internal/models"
	"pump_scanner/internal/modules/bybit/service"
	"pump_scanner/internal/modules/config"
	healthsvc "pump_scanner/internal/modules/health/service"
	tgsvc "pump_scanner/internal/modules/telegram_bot/service"
	"pump_scanner/internal/notify"
	"pump_scanner/pkg/logger"
)

// cooldownRetentionMult — во сколько окон кулдауна живёт запись
// до уборки. Чистая гигиена памяти, на корректность не влияет.
const cooldownRetentionMult = 2

// minWindow — совсем пустые выдачи провайдера пропускаем сразу,
// не тратя время детектора.
const minWindow = 5

// MarketData — провайдер рыночных данных.
type MarketData interface {
	GetInstruments(ctx context.Context, quote string) ([]string, error)
	GetCandles(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error)
}

// Runner крутит циклы сканирования: по каждому инструменту вне кулдауна
// тянет свежее окно свечей, зовёт детектор и рассылает сигналы.
type Runner struct {
	cfg      *config.Config
	det      *detector.Detector
	cooldown *detector.Cooldown
	market   MarketData
	n        notify.Notifier
	state    *healthsvc.State

	signalCount int
	now         func() time.Time
}

func New(cfg *config.Config, market MarketData, n notify.Notifier, state *healthsvc.State) *Runner {
	return &Runner{
		cfg:      cfg,
		det:      detector.New(cfg.DetectorConfig()),
		cooldown: detector.NewCooldown(cfg.Cooldown),
		market:   market,
		n:        n,
		state:    state,
		now:      time.Now,
	}
}

// Run — основной цикл. Возвращается только по ctx.
func (r *Runner) Run(ctx context.Context) {
	symbols := r.loadSymbols(ctx)
	if len(symbols) == 0 {
		logger.Error("не удалось получить список инструментов, сканер не запущен")
		return
	}

	logger.Info("🔍 Найдено монет: %d", len(symbols))
	r.state.SetSymbols(len(symbols))
	r.state.SetReady(true)
	r.n.Broadcast(ctx, fmt.Sprintf("🤖 Сканер пампов/дампов запущен | %sm ТФ | Монет: %d",
		r.cfg.Timeframe, len(symbols)))

	for {
		r.scanCycle(ctx, symbols)
		log.Printf("⏰ Следующий цикл через %s | Сигналов: %d", r.cfg.ScanInterval, r.signalCount)
		if !sleep(ctx, r.cfg.ScanInterval) {
			return
		}
	}
}

// loadSymbols тянет список инструментов с ретраем: на старте биржа
// может лимитировать или моргать сетью.
func (r *Runner) loadSymbols(ctx context.Context) []string {
	for attempt := 0; attempt < 5; attempt++ {
		symbols, err := r.market.GetInstruments(ctx, r.cfg.QuoteCurrency)
		if err == nil {
			return symbols
		}
		logger.Error("instruments: %v", err)
		if !sleep(ctx, r.cfg.RateLimitBackoff) {
			return nil
		}
	}
	return nil
}

func (r *Runner) scanCycle(ctx context.Context, symbols []string) {
	span := opentracing.StartSpan("scan.cycle")
	defer span.Finish()

	start := r.now()
	cycleSignals := 0

	for _, symbol := range symbols {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !r.cooldown.IsCooledDown(symbol, r.now()) {
			continue
		}

		candles, err := r.market.GetCandles(ctx, symbol, r.cfg.Timeframe, r.cfg.CandleLimit)
		switch {
		case errors.Is(err, service.ErrRateLimited):
			// лимит запросов: короткая пауза и продолжаем цикл
			log.Printf("[RATE-LIMIT] %s, пауза %s", symbol, r.cfg.RateLimitBackoff)
			if !sleep(ctx, r.cfg.RateLimitBackoff) {
				return
			}
			continue
		case err != nil:
			// transient: инструмент пропускаем, цикл продолжается
			log.Printf("[SKIP] %s: %v", symbol, err)
			continue
		}
		if len(candles) < minWindow {
			continue
		}

		sig := r.det.Classify(symbol, candles, r.now())
		if sig == nil {
			continue
		}

		// кулдаун привязан к детекции, не к успешной доставке
		r.cooldown.Record(symbol, sig.DetectedAt)
		r.signalCount++
		cycleSignals++
		r.state.AddSignal()

		logger.Info("🎯 СИГНАЛ #%d: %s | %s | %+.1f%% | Объем Z=%.1f | %s",
			r.signalCount, sig.Symbol, sig.Direction, sig.PriceChangePct, sig.VolumeZScore, sig.Tier)

		r.n.Broadcast(ctx, tgsvc.FormatSignal(sig))
	}

	r.cooldown.Sweep(r.now(), cooldownRetentionMult*r.cfg.Cooldown)
	r.state.TouchScan(r.now())

	span.SetTag("symbols", len(symbols))
	span.SetTag("signals", cycleSignals)
	span.SetTag("tookMs", r.now().Sub(start).Milliseconds())
}

// sleep ждёт d или отмену контекста; false — пора выходить.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
