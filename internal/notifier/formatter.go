package notifier

import (
	"fmt"
	"strings"
	"time"

	"SignalScope/internal/model"
)

// FormatScanReport renders one scan result as a plain-text report.
func FormatScanReport(symbol string, latest model.EnrichedBar, sig *model.ReversalSignal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("SignalScope scan | %s | %s\n\n", symbol, time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Close: %.2f (bar %s)\n", latest.Close, latest.Time.Format("2006-01-02")))

	if latest.EMA20 != nil && latest.EMA50 != nil {
		b.WriteString(fmt.Sprintf("EMA20: %.2f | EMA50: %.2f\n", *latest.EMA20, *latest.EMA50))
	}
	if latest.RSI > 0 {
		b.WriteString(fmt.Sprintf("RSI: %.1f\n", latest.RSI))
	}
	if latest.MACDLine != nil && latest.MACDHistogram != nil {
		b.WriteString(fmt.Sprintf("MACD: %.4f (hist %+.4f)\n", *latest.MACDLine, *latest.MACDHistogram))
	}
	if latest.BBUpper != nil && latest.BBLower != nil {
		b.WriteString(fmt.Sprintf("Bollinger: %.2f / %.2f / %.2f\n", *latest.BBUpper, *latest.BBMiddle, *latest.BBLower))
	}
	if latest.VolumeRatio != nil {
		b.WriteString(fmt.Sprintf("Volume ratio: %.2fx\n", *latest.VolumeRatio))
	}

	if latest.BuySignal != nil {
		b.WriteString(fmt.Sprintf("\nClassic BUY marker at %.2f\n", *latest.BuySignal))
	}
	if latest.SellSignal != nil {
		b.WriteString(fmt.Sprintf("\nClassic SELL marker at %.2f\n", *latest.SellSignal))
	}

	if sig != nil {
		b.WriteString(fmt.Sprintf("\nReversal: %s (strength %d)\n", strings.ToUpper(string(sig.Type)), sig.Strength))
		for _, r := range sig.Reasons {
			b.WriteString(fmt.Sprintf("  - %s\n", r))
		}
	} else {
		b.WriteString("\nNo actionable reversal signal.\n")
	}

	return b.String()
}
