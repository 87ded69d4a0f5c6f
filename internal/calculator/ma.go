package calculator

import (
	"errors"

	"SignalScope/internal/series"
)

// ErrInvalidPeriod is returned when a calculator receives a non-positive
// period. This cannot happen through normalized settings; it indicates a
// caller bug.
var ErrInvalidPeriod = errors.New("period must be positive")

// SMA computes the simple moving average of values over the given period.
// Indices below period-1 are nil: the trailing window is not yet full.
func SMA(values []float64, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	out := make([]*float64, len(values))
	for i := period - 1; i < len(values); i++ {
		window, ok := series.Trailing(values, i, period)
		if !ok {
			continue
		}
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)
		out[i] = &mean
	}
	return out, nil
}

// EMA computes the exponential moving average of values over the given
// period. The series is seeded with values[0] rather than an SMA, so every
// index is defined. Altering the seed would shift the MACD signal line for
// early bars; keep it as is.
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(values) == 0 {
		return []float64{}, nil
	}
	k := 2.0 / float64(period+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1-k)
	}
	return out, nil
}
