package collector

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"SignalScope/internal/model"
)

// Collector fetches the bar series for one symbol and validates it before
// handing it to the computation pipeline.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Limit   int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string, limit int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Limit: limit}
}

// Collect fetches and validates the bar series.
func (c *Collector) Collect() ([]model.Bar, error) {
	bars, err := c.Fetcher.FetchBars(c.Symbol, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	if err := ValidateBars(bars); err != nil {
		return nil, fmt.Errorf("validate bars: %w", err)
	}
	log.Debug().Str("symbol", c.Symbol).Int("bars", len(bars)).
		Str("source", c.Fetcher.Name()).Msg("collected bar series")
	return bars, nil
}

// ValidateBars checks the input contract the pipeline relies on: ascending
// timestamps, finite non-negative values, and high/low bracketing the body.
func ValidateBars(bars []model.Bar) error {
	for i, b := range bars {
		if err := checkFinite(b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
		if b.High < math.Max(b.Open, b.Close) || b.Low > math.Min(b.Open, b.Close) {
			return fmt.Errorf("bar %d: high/low do not bracket open/close", i)
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("bar %d: timestamps must be strictly ascending", i)
		}
	}
	return nil
}

func checkFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("value %v is not a non-negative finite number", v)
		}
	}
	return nil
}
