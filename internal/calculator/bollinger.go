package calculator

import (
	"math"

	"SignalScope/internal/series"
)

// BollingerBands computes the mean +/- multiplier*stddev envelope over a
// rolling window of closes. The variance divisor is the full period
// (population variance), not period-1. Indices below period-1 are nil.
func BollingerBands(closes []float64, period int, multiplier float64) (upper, middle, lower []*float64, err error) {
	if period <= 0 {
		return nil, nil, nil, ErrInvalidPeriod
	}
	n := len(closes)
	upper = make([]*float64, n)
	middle = make([]*float64, n)
	lower = make([]*float64, n)

	for i := period - 1; i < n; i++ {
		window, ok := series.Trailing(closes, i, period)
		if !ok {
			continue
		}
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		mean := sum / float64(period)

		variance := 0.0
		for _, v := range window {
			variance += (v - mean) * (v - mean)
		}
		sd := math.Sqrt(variance / float64(period))

		u := mean + multiplier*sd
		l := mean - multiplier*sd
		m := mean
		upper[i], middle[i], lower[i] = &u, &m, &l
	}
	return upper, middle, lower, nil
}
