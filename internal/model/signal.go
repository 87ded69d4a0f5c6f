package model

// ReversalType classifies a bar as a likely turning point.
type ReversalType string

const (
	ReversalNone    ReversalType = ""
	ReversalBullish ReversalType = "bullish"
	ReversalBearish ReversalType = "bearish"
)

// ReversalSignal is the per-bar output of the reversal engine.
// Strength is bounded to [0, 100]; Reasons lists the rule labels that
// contributed to the winning side, in evaluation order.
type ReversalSignal struct {
	Type     ReversalType
	Strength int
	Reasons  []string
}

// Actionable reports whether the signal is strong enough to act on
// (stamp chart markers, notify, record).
func (s ReversalSignal) Actionable() bool {
	return s.Type != ReversalNone && s.Strength >= MarkerStrengthFloor
}

// Fixed thresholds of the signal engines. These are deliberate constants,
// not tunables: the scoring tables were calibrated against them.
const (
	// PipelineFloor is the minimum series length for any enrichment.
	PipelineFloor = 50
	// ClassicWarmupFloor: classic signals are only evaluated for i > 50.
	ClassicWarmupFloor = 50
	// ReversalWarmupFloor: reversal scoring starts at index 30.
	ReversalWarmupFloor = 30
	// NetScoreThreshold is the minimum |bullish-bearish| spread to classify.
	NetScoreThreshold = 30
	// StrengthCap bounds the reported strength.
	StrengthCap = 100
	// MarkerStrengthFloor is the minimum strength for chart markers and
	// the latest-signal summary.
	MarkerStrengthFloor = 40
	// LatestSignalLookback is how many trailing bars the summary scans.
	LatestSignalLookback = 10
)
