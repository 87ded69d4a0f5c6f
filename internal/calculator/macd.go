package calculator

// MACD computes the moving-average convergence/divergence triple over closes:
// line = EMA(fast) - EMA(slow), signal = EMA(line, signalPeriod) seeded with
// line[0], histogram = line - signal. All three series are defined from
// index 0, mirroring EMA's seeding (there is no warm-up gap).
func MACD(closes []float64, fast, slow, signalPeriod int) (line, signal, histogram []float64, err error) {
	fastEMA, err := EMA(closes, fast)
	if err != nil {
		return nil, nil, nil, err
	}
	slowEMA, err := EMA(closes, slow)
	if err != nil {
		return nil, nil, nil, err
	}

	line = make([]float64, len(closes))
	for i := range closes {
		line[i] = fastEMA[i] - slowEMA[i]
	}

	signal, err = EMA(line, signalPeriod)
	if err != nil {
		return nil, nil, nil, err
	}

	histogram = make([]float64, len(closes))
	for i := range closes {
		histogram[i] = line[i] - signal[i]
	}
	return line, signal, histogram, nil
}
