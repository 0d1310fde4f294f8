package detector

import (
	"sync"
	"time"
)

// Cooldown — карта «инструмент → время последнего сигнала».
// Гасит повторные сигналы по одному инструменту внутри окна.
// Мьютекс нужен на случай параллельного фан-аута фетчей; при
// однопоточном цикле он просто не конкурирует.
type Cooldown struct {
	mu     sync.Mutex
	window time.Duration
	last   map[string]time.Time
}

func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		window: window,
		last:   make(map[string]time.Time),
	}
}

// IsCooledDown — true, если по инструменту ещё не было сигнала
// или окно с момента последнего уже истекло.
func (c *Cooldown) IsCooledDown(symbol string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.last[symbol]
	if !ok {
		return true
	}
	return now.Sub(at) >= c.window
}

// Record фиксирует момент сигнала по инструменту.
func (c *Cooldown) Record(symbol string, now time.Time) {
	c.mu.Lock()
	c.last[symbol] = now
	c.mu.Unlock()
}

// Sweep выкидывает записи старше retention, чтобы карта не росла
// бесконечно. На корректность IsCooledDown не влияет: вычищенный
// инструмент и так давно «остыл».
func (c *Cooldown) Sweep(now time.Time, retention time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for symbol, at := range c.last {
		if now.Sub(at) >= retention {
			delete(c.last, symbol)
		}
	}
}

// Len — текущее число записей (для health-отчёта).
func (c *Cooldown) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.last)
}
