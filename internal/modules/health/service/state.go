package service

import (
	"sync/atomic"
	"time"
)

// State — счётчики сканера для health-эндпоинта.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	symbols      atomic.Int64
	signals      atomic.Int64
	lastScanUnix atomic.Int64 // unix seconds
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

func (s *State) SetSymbols(n int) { s.symbols.Store(int64(n)) }
func (s *State) Symbols() int64   { return s.symbols.Load() }

func (s *State) AddSignal()     { s.signals.Add(1) }
func (s *State) Signals() int64 { return s.signals.Load() }

func (s *State) TouchScan(t time.Time) { s.lastScanUnix.Store(t.Unix()) }
func (s *State) LastScan() time.Time {
	u := s.lastScanUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
