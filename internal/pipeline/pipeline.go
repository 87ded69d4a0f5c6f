// Package pipeline orchestrates the indicator calculators and signal
// engines into one enriched-bar sequence per invocation. Compute is a pure
// function of its inputs: no state is carried between calls, and identical
// inputs produce identical output.
package pipeline

import (
	"SignalScope/internal/calculator"
	"SignalScope/internal/model"
	"SignalScope/internal/series"
	"SignalScope/internal/signal"
)

// Period of the EMA pair driving the classic crossover detector and of the
// rolling volume average. Fixed, independent of settings.
const (
	emaFastPeriod  = 20
	emaSlowPeriod  = 50
	volumeMAPeriod = 20
)

// Compute runs every enabled indicator stage over bars and returns the
// enriched sequence. The output is index-aligned with the input: same
// length, same order, one enriched record per bar.
//
// Series shorter than model.PipelineFloor bars are passed through without
// any enrichment, regardless of configured periods. Settings must come
// through the normalized settings layer; an invalid period here is a caller
// bug and surfaces as an error.
func Compute(bars []model.Bar, settings model.IndicatorSettings) ([]model.EnrichedBar, error) {
	enriched := make([]model.EnrichedBar, len(bars))
	for i, b := range bars {
		enriched[i] = model.EnrichedBar{Bar: b}
	}
	if len(bars) < model.PipelineFloor {
		return enriched, nil
	}

	w := series.New(bars)
	closes := w.Closes()
	volumes := w.Volumes()

	bbUpper, bbMiddle, bbLower, err := calculator.BollingerBands(closes, settings.SMAPeriod, settings.StdDevMultiplier)
	if err != nil {
		return nil, err
	}
	ema20, err := calculator.EMA(closes, emaFastPeriod)
	if err != nil {
		return nil, err
	}
	ema50, err := calculator.EMA(closes, emaSlowPeriod)
	if err != nil {
		return nil, err
	}
	rsi, err := calculator.RSI(closes, settings.RSIPeriod)
	if err != nil {
		return nil, err
	}
	macdLine, macdSignal, macdHist, err := calculator.MACD(closes, settings.MACDFast, settings.MACDSlow, settings.MACDSignal)
	if err != nil {
		return nil, err
	}
	volumeMA, volumeRatio, err := calculator.VolumeMA(volumes, volumeMAPeriod)
	if err != nil {
		return nil, err
	}

	var reversals []model.ReversalSignal
	if settings.EnableReversalEngine {
		reversals = signal.ScoreReversals(bars, rsi, macdLine, macdSignal, macdHist, volumeRatio)
	}

	for i := range enriched {
		e := &enriched[i]
		if settings.ShowBollinger {
			e.BBUpper, e.BBMiddle, e.BBLower = bbUpper[i], bbMiddle[i], bbLower[i]
			e.PriceRange = &[2]float64{bars[i].Low, bars[i].High}
		}
		if settings.ShowEMA {
			e.EMA20 = model.Float(ema20[i])
			e.EMA50 = model.Float(ema50[i])
		}
		if settings.ShowRSI {
			e.RSI = rsi[i]
		}
		if settings.ShowMACD {
			e.MACDLine = model.Float(macdLine[i])
			e.MACDSignal = model.Float(macdSignal[i])
			e.MACDHistogram = model.Float(macdHist[i])
		}
		if settings.ShowVolume {
			e.VolumeMA = model.Float(volumeMA[i])
			e.VolumeRatio = model.Float(volumeRatio[i])
		}
		if settings.EnableReversalEngine {
			rev := reversals[i]
			e.ReversalType = rev.Type
			e.ReversalStrength = rev.Strength
			e.ReversalReasons = rev.Reasons
			if rev.Actionable() {
				switch rev.Type {
				case model.ReversalBullish:
					e.ReversalBuy = model.Float(signal.BuyMarkerPrice(bars[i]))
				case model.ReversalBearish:
					e.ReversalSell = model.Float(signal.SellMarkerPrice(bars[i]))
				}
			}
		}
	}

	if settings.EnableClassicSignals {
		// The detector works on the raw series, not the stamped fields, so
		// it stays functional with the EMA/RSI display groups disabled.
		buy, sell := signal.DetectClassic(bars, ema20, ema50, rsi)
		for i := range enriched {
			enriched[i].BuySignal = buy[i]
			enriched[i].SellSignal = sell[i]
		}
	}

	return enriched, nil
}

// LatestSignal scans the trailing model.LatestSignalLookback bars from the
// end backward and returns the most recent actionable reversal signal, or
// nil when none qualifies (or the reversal engine is disabled).
func LatestSignal(enriched []model.EnrichedBar, settings model.IndicatorSettings) *model.ReversalSignal {
	if !settings.EnableReversalEngine {
		return nil
	}
	start := len(enriched) - model.LatestSignalLookback
	if start < 0 {
		start = 0
	}
	for i := len(enriched) - 1; i >= start; i-- {
		e := enriched[i]
		if e.ReversalType != model.ReversalNone && e.ReversalStrength >= model.MarkerStrengthFloor {
			return &model.ReversalSignal{
				Type:     e.ReversalType,
				Strength: e.ReversalStrength,
				Reasons:  e.ReversalReasons,
			}
		}
	}
	return nil
}
