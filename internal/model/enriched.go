package model

// EnrichedBar is a Bar plus the indicator fields computed by the pipeline.
// Optional fields use pointers: nil means "not defined at this index"
// (insufficient window, or the indicator group is disabled).
//
// RSI is the one exception: it is a plain float64 that stays zero through
// the warm-up window. Consumers test RSI > 0 for readiness, so the zero-fill
// convention must not be collapsed into the pointer convention.
type EnrichedBar struct {
	Bar

	EMA20 *float64
	EMA50 *float64

	RSI float64

	MACDLine      *float64
	MACDSignal    *float64
	MACDHistogram *float64

	BBUpper  *float64
	BBMiddle *float64
	BBLower  *float64

	// PriceRange is the [low, high] pass-through used by candlestick
	// rendering. Stamped with the Bollinger group.
	PriceRange *[2]float64

	VolumeMA    *float64
	VolumeRatio *float64

	// Classic crossover markers: price levels, nil when no signal.
	BuySignal  *float64
	SellSignal *float64

	ReversalType     ReversalType
	ReversalStrength int
	ReversalReasons  []string

	// Reversal chart markers, stamped only at MarkerStrengthFloor and above.
	ReversalBuy  *float64
	ReversalSell *float64
}

// Float returns a pointer to v. Convenience for building optional fields.
func Float(v float64) *float64 { return &v }
