package recorder

import (
	"time"

	"SignalScope/internal/model"
)

// ScanSnapshot holds the outcome of one scheduled scan: the latest enriched
// bar and the signal summary derived from the full series.
type ScanSnapshot struct {
	Symbol    string
	ScannedAt time.Time
	BarCount  int
	Latest    model.EnrichedBar
	Signal    *model.ReversalSignal // nil when no actionable signal
}

// Recorder persists scan snapshots.
type Recorder interface {
	RecordScan(snap *ScanSnapshot) error
	Close() error
}
