package booking

import (
	"fmt"
	"sync"
)

const (
	MinRateDate = 1
	MaxRateDate = 30
	MinRate     = 0.5
	MaxRate     = 1.5
	defaultRate = 1.0
)

// RateTable holds per-night multipliers for one room. Nights without an
// override are priced at 1.0.
type RateTable struct {
	mu    sync.RWMutex
	rates map[int]float64
}

func NewRateTable() *RateTable {
	return &RateTable{rates: make(map[int]float64)}
}

func (rt *RateTable) Set(date int, rate float64) error {
	if date < MinRateDate || date > MaxRateDate {
		return fmt.Errorf("date %d: %w", date, ErrInvalidRateDate)
	}

	if rate < MinRate || rate > MaxRate {
		return fmt.Errorf("rate %v: %w", rate, ErrInvalidRate)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.rates[date] = rate

	return nil
}

// Clear drops the override for date and reports whether one existed.
func (rt *RateTable) Clear(date int) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if _, ok := rt.rates[date]; !ok {
		return false
	}

	delete(rt.rates, date)

	return true
}

func (rt *RateTable) For(night int) float64 {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	if rate, ok := rt.rates[night]; ok {
		return rate
	}

	return defaultRate
}

func (rt *RateTable) Snapshot() map[int]float64 {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	out := make(map[int]float64, len(rt.rates))
	for date, rate := range rt.rates {
		out[date] = rate
	}

	return out
}
