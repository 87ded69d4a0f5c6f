package signal

import (
	"strings"

	"SignalScope/internal/model"
)

// Reversal engine thresholds.
const (
	priceChangeThreshold = 0.01 // fractional close-to-close move that counts
	volumeSurgeRatio     = 1.5  // volume ratio above this is a surge
	weakVolumeRatio      = 0.7  // volume ratio below this is weak participation
)

// Substring markers used to keep only the reasons meaningful for the
// winning side. The filter is deliberately a substring match: the UI layer
// groups reasons by these fragments.
var (
	bullishMarkers = []string{"Oversold", "Recovering", "Bullish", "Up", "Above", "Weak Volume Selloff"}
	bearishMarkers = []string{"Overbought", "Weakening", "Bearish", "Down", "Below", "Weak Volume Rally"}
)

// ScoreReversals runs the weighted multi-factor reversal classifier over the
// whole series. It requires the precomputed RSI, MACD (line, signal,
// histogram) and volume-ratio series. Indices below
// model.ReversalWarmupFloor are left as zero-value signals (type none).
//
// Two independent totals accumulate: every rule that fires adds points to
// its side and appends its label. A bar classifies only when the net spread
// reaches model.NetScoreThreshold; the reported strength is the winning
// side's total capped at model.StrengthCap, and the reasons are filtered to
// the winning side's labels.
func ScoreReversals(bars []model.Bar, rsi, macdLine, macdSignal, macdHist, volumeRatio []float64) []model.ReversalSignal {
	out := make([]model.ReversalSignal, len(bars))

	for i := model.ReversalWarmupFloor; i < len(bars); i++ {
		var bullish, bearish int
		var reasons []string

		b, br, rs := scoreRSIRules(rsi[i], rsi[i-1])
		bullish += b
		bearish += br
		reasons = append(reasons, rs...)

		b, br, rs = scoreMACDRules(macdLine[i-1], macdLine[i], macdSignal[i-1], macdSignal[i], macdHist[i-1], macdHist[i])
		bullish += b
		bearish += br
		reasons = append(reasons, rs...)

		priceChange := 0.0
		if bars[i-1].Close != 0 {
			priceChange = (bars[i].Close - bars[i-1].Close) / bars[i-1].Close
		}
		b, br, rs = scoreVolumeRules(volumeRatio[i], priceChange)
		bullish += b
		bearish += br
		reasons = append(reasons, rs...)

		net := bullish - bearish
		switch {
		case net >= model.NetScoreThreshold:
			out[i] = model.ReversalSignal{
				Type:     model.ReversalBullish,
				Strength: capStrength(bullish),
				Reasons:  filterReasons(reasons, bullishMarkers),
			}
		case net <= -model.NetScoreThreshold:
			out[i] = model.ReversalSignal{
				Type:     model.ReversalBearish,
				Strength: capStrength(bearish),
				Reasons:  filterReasons(reasons, bearishMarkers),
			}
		}
	}
	return out
}

// scoreRSIRules evaluates the oscillator-extreme and momentum-fade rules.
func scoreRSIRules(rsi, prevRSI float64) (bullish, bearish int, reasons []string) {
	if rsi <= 30 {
		bullish += 25
		reasons = append(reasons, "RSI Oversold")
	}
	if rsi <= 40 && prevRSI < rsi {
		bullish += 15
		reasons = append(reasons, "RSI Recovering")
	}
	if rsi >= 70 {
		bearish += 25
		reasons = append(reasons, "RSI Overbought")
	}
	if rsi >= 60 && prevRSI > rsi {
		bearish += 15
		reasons = append(reasons, "RSI Weakening")
	}
	return bullish, bearish, reasons
}

// scoreMACDRules evaluates signal-line crosses, histogram momentum and
// zero-line crosses.
func scoreMACDRules(prevLine, line, prevSignal, signal, prevHist, hist float64) (bullish, bearish int, reasons []string) {
	if prevLine < prevSignal && line > signal {
		bullish += 30
		reasons = append(reasons, "MACD Bullish Cross")
	}
	if prevLine > prevSignal && line < signal {
		bearish += 30
		reasons = append(reasons, "MACD Bearish Cross")
	}
	if hist > 0 && hist > prevHist {
		bullish += 10
		reasons = append(reasons, "MACD Momentum Up")
	}
	if hist < 0 && hist < prevHist {
		bearish += 10
		reasons = append(reasons, "MACD Momentum Down")
	}
	if prevLine < 0 && line > 0 {
		bullish += 15
		reasons = append(reasons, "MACD Above Zero")
	}
	if prevLine > 0 && line < 0 {
		bearish += 15
		reasons = append(reasons, "MACD Below Zero")
	}
	return bullish, bearish, reasons
}

// scoreVolumeRules evaluates participation: surges confirm the move,
// weak volume argues against it.
func scoreVolumeRules(volRatio, priceChange float64) (bullish, bearish int, reasons []string) {
	if volRatio > volumeSurgeRatio && priceChange > priceChangeThreshold {
		bullish += 20
		reasons = append(reasons, "Volume Surge (Up)")
	}
	if volRatio > volumeSurgeRatio && priceChange < -priceChangeThreshold {
		bearish += 20
		reasons = append(reasons, "Volume Surge (Down)")
	}
	if priceChange > priceChangeThreshold && volRatio < weakVolumeRatio {
		bearish += 10
		reasons = append(reasons, "Weak Volume Rally")
	}
	if priceChange < -priceChangeThreshold && volRatio < weakVolumeRatio {
		bullish += 10
		reasons = append(reasons, "Weak Volume Selloff")
	}
	return bullish, bearish, reasons
}

func capStrength(score int) int {
	if score > model.StrengthCap {
		return model.StrengthCap
	}
	return score
}

func filterReasons(reasons, markers []string) []string {
	var kept []string
	for _, r := range reasons {
		for _, m := range markers {
			if strings.Contains(r, m) {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}
