package calculator

import "SignalScope/internal/series"

// VolumeMA computes the rolling volume average and the current/average
// ratio. Warm-up indices fall back to the bar's own volume with a ratio of 1
// so consumers never see an undefined volume baseline. A zero rolling
// average also yields a ratio of 1, keeping NaN/Inf out of the series.
func VolumeMA(volumes []float64, period int) (ma, ratio []float64, err error) {
	if period <= 0 {
		return nil, nil, ErrInvalidPeriod
	}
	n := len(volumes)
	ma = make([]float64, n)
	ratio = make([]float64, n)

	for i := 0; i < n; i++ {
		window, ok := series.Trailing(volumes, i, period)
		if !ok {
			ma[i] = volumes[i]
			ratio[i] = 1
			continue
		}
		sum := 0.0
		for _, v := range window {
			sum += v
		}
		avg := sum / float64(period)
		ma[i] = avg
		if avg == 0 {
			ratio[i] = 1
		} else {
			ratio[i] = volumes[i] / avg
		}
	}
	return ma, ratio, nil
}
