// Package series provides read-only, bounds-checked views over ordered
// bar sequences. Every calculator builds on these primitives.
package series

import "SignalScope/internal/model"

// Window is a read-only view of an ordered bar sequence.
type Window struct {
	bars []model.Bar
}

// New wraps bars in a Window. The underlying slice is not copied; callers
// must not mutate it while the window is in use.
func New(bars []model.Bar) Window {
	return Window{bars: bars}
}

// Len returns the number of bars in the window.
func (w Window) Len() int { return len(w.bars) }

// At returns the bar at index i and whether i is in bounds.
func (w Window) At(i int) (model.Bar, bool) {
	if i < 0 || i >= len(w.bars) {
		return model.Bar{}, false
	}
	return w.bars[i], true
}

// Closes extracts the close price of every bar.
func (w Window) Closes() []float64 {
	out := make([]float64, len(w.bars))
	for i, b := range w.bars {
		out[i] = b.Close
	}
	return out
}

// Volumes extracts the volume of every bar.
func (w Window) Volumes() []float64 {
	out := make([]float64, len(w.bars))
	for i, b := range w.bars {
		out[i] = b.Volume
	}
	return out
}

// Slice returns the trailing window of length period ending at end
// inclusive. Returns ok=false when the window would run past either bound.
func (w Window) Slice(end, period int) ([]model.Bar, bool) {
	if period <= 0 || end < 0 || end >= len(w.bars) || end-period+1 < 0 {
		return nil, false
	}
	return w.bars[end-period+1 : end+1], true
}

// Trailing returns the window of length period ending at end inclusive over
// a plain float series. Shared by the rolling-window calculators.
func Trailing(values []float64, end, period int) ([]float64, bool) {
	if period <= 0 || end < 0 || end >= len(values) || end-period+1 < 0 {
		return nil, false
	}
	return values[end-period+1 : end+1], true
}
