package model

// Clamp bounds for the RSI period. Applied once at the settings layer;
// calculators receive already-validated periods.
const (
	MinRSIPeriod = 2
	MaxRSIPeriod = 50
)

// IndicatorSettings configures one pipeline computation. A settings value is
// immutable per computation; any change triggers a full recompute upstream.
type IndicatorSettings struct {
	SMAPeriod        int     // Bollinger window
	StdDevMultiplier float64 // Bollinger band width
	RSIPeriod        int
	MACDFast         int
	MACDSlow         int
	MACDSignal       int

	ShowBollinger        bool
	ShowEMA              bool
	ShowRSI              bool
	ShowMACD             bool
	ShowVolume           bool
	EnableClassicSignals bool
	EnableReversalEngine bool
}

// DefaultSettings returns the standard configuration: Bollinger 20/2.0,
// RSI 14, MACD 12/26/9, all indicator groups and both signal engines enabled.
func DefaultSettings() IndicatorSettings {
	return IndicatorSettings{
		SMAPeriod:            20,
		StdDevMultiplier:     2.0,
		RSIPeriod:            14,
		MACDFast:             12,
		MACDSlow:             26,
		MACDSignal:           9,
		ShowBollinger:        true,
		ShowEMA:              true,
		ShowRSI:              true,
		ShowMACD:             true,
		ShowVolume:           true,
		EnableClassicSignals: true,
		EnableReversalEngine: true,
	}
}

// Normalize fills zero periods with defaults and clamps the RSI period to
// [MinRSIPeriod, MaxRSIPeriod]. This is the only place clamping happens;
// the computation core trusts the values it receives.
func (s *IndicatorSettings) Normalize() {
	def := DefaultSettings()
	if s.SMAPeriod <= 0 {
		s.SMAPeriod = def.SMAPeriod
	}
	if s.StdDevMultiplier <= 0 {
		s.StdDevMultiplier = def.StdDevMultiplier
	}
	if s.RSIPeriod == 0 {
		s.RSIPeriod = def.RSIPeriod
	}
	if s.RSIPeriod < MinRSIPeriod {
		s.RSIPeriod = MinRSIPeriod
	}
	if s.RSIPeriod > MaxRSIPeriod {
		s.RSIPeriod = MaxRSIPeriod
	}
	if s.MACDFast <= 0 {
		s.MACDFast = def.MACDFast
	}
	if s.MACDSlow <= 0 {
		s.MACDSlow = def.MACDSlow
	}
	if s.MACDSignal <= 0 {
		s.MACDSignal = def.MACDSignal
	}
}
