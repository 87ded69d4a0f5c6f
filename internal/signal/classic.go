// Package signal implements the two trading-signal layers computed from
// enriched indicator series: the classic EMA-crossover detector and the
// multi-factor reversal engine.
package signal

import "SignalScope/internal/model"

// Classic detector thresholds.
const (
	rsiBuyCeiling = 60.0 // crossover buys are suppressed above this RSI
	rsiSellCross  = 70.0 // RSI crossing above this level triggers a sell
	buyOffset     = 0.98 // buy marker price: low * buyOffset
	sellOffset    = 1.02 // sell marker price: high * sellOffset
)

// BuyMarkerPrice returns the chart price level for a buy marker on b.
// Shared by the classic detector and the reversal marker stamping.
func BuyMarkerPrice(b model.Bar) float64 { return b.Low * buyOffset }

// SellMarkerPrice returns the chart price level for a sell marker on b.
func SellMarkerPrice(b model.Bar) float64 { return b.High * sellOffset }

// DetectClassic scans for EMA20/EMA50 crossovers and RSI-threshold events.
// It requires the precomputed EMA20, EMA50 and RSI series and only evaluates
// indices above model.ClassicWarmupFloor regardless of configured periods.
//
// Buy: EMA20 crosses above EMA50 while RSI < 60; marker at low * 0.98.
// Sell: EMA20 crosses below EMA50, or RSI crosses above 70 from at or
// below it; marker at high * 1.02. The two tests run independently and the
// sell test runs second, so a sell on the same bar wins. At most one marker
// is set per bar.
func DetectClassic(bars []model.Bar, ema20, ema50, rsi []float64) (buy, sell []*float64) {
	n := len(bars)
	buy = make([]*float64, n)
	sell = make([]*float64, n)

	for i := model.ClassicWarmupFloor + 1; i < n; i++ {
		prev20, prev50 := ema20[i-1], ema50[i-1]
		curr20, curr50 := ema20[i], ema50[i]

		if prev20 < prev50 && curr20 > curr50 && rsi[i] < rsiBuyCeiling {
			buy[i] = model.Float(BuyMarkerPrice(bars[i]))
		}

		crossedDown := prev20 > prev50 && curr20 < curr50
		rsiCrossedUp := rsi[i-1] <= rsiSellCross && rsi[i] > rsiSellCross
		if crossedDown || rsiCrossedUp {
			sell[i] = model.Float(SellMarkerPrice(bars[i]))
			buy[i] = nil
		}
	}
	return buy, sell
}
