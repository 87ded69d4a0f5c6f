package scheduler

import (
	"context"
	"testing"
	"time"

	"SignalScope/internal/collector"
	"SignalScope/internal/model"
	"SignalScope/internal/recorder"
)

type captureNotifier struct {
	sent []string
}

func (c *captureNotifier) Send(text string) error {
	c.sent = append(c.sent, text)
	return nil
}

type captureRecorder struct {
	snaps []*recorder.ScanSnapshot
}

func (c *captureRecorder) RecordScan(s *recorder.ScanSnapshot) error {
	c.snaps = append(c.snaps, s)
	return nil
}
func (c *captureRecorder) Close() error { return nil }

// Bars engineered to fire a strong bullish reversal on the final bar: a
// long slide into deeply oversold territory, then a high-volume bounce.
func reversalBars() []model.Bar {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 100
	bars := make([]model.Bar, n)
	price := 200.0
	for i := 0; i < n; i++ {
		vol := 1000.0
		switch {
		case i < n-2:
			price -= 1.2
		default:
			price += 6 // sharp bounce on the last two bars
			vol = 4000
		}
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   price - 0.5,
			High:   price + 2,
			Low:    price - 2,
			Close:  price,
			Volume: vol,
		}
	}
	return bars
}

func TestScan_RecordsAndNotifies(t *testing.T) {
	fetcher := &collector.MockFetcher{Bars: reversalBars()}
	col := collector.NewCollector(fetcher, "TEST", 0)
	n := &captureNotifier{}
	rec := &captureRecorder{}

	s := NewScheduler(context.Background(), col, model.DefaultSettings(), n, rec)
	if err := s.RunScanNow(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(rec.snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(rec.snaps))
	}
	snap := rec.snaps[0]
	if snap.Symbol != "TEST" || snap.BarCount != 100 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.Signal == nil {
		t.Fatal("expected an actionable signal from the engineered series")
	}
	if snap.Signal.Type != model.ReversalBullish {
		t.Errorf("signal type = %v, want bullish", snap.Signal.Type)
	}
	if len(n.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(n.sent))
	}
}

func TestScan_QuietSeriesStillRecords(t *testing.T) {
	// Flat series: record the snapshot, send nothing.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 80)
	for i := range bars {
		bars[i] = model.Bar{
			Time: base.AddDate(0, 0, i),
			Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000,
		}
	}
	fetcher := &collector.MockFetcher{Bars: bars}
	col := collector.NewCollector(fetcher, "QUIET", 0)
	n := &captureNotifier{}
	rec := &captureRecorder{}

	s := NewScheduler(context.Background(), col, model.DefaultSettings(), n, rec)
	if err := s.RunScanNow(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(n.sent) != 0 {
		t.Errorf("no notification expected on a quiet series, got %d", len(n.sent))
	}
	if len(rec.snaps) != 1 {
		t.Errorf("snapshot must still be recorded")
	}
	if rec.snaps[0].Signal != nil {
		t.Errorf("unexpected signal: %+v", rec.snaps[0].Signal)
	}
}

func TestRegister_BadCron(t *testing.T) {
	s := NewScheduler(context.Background(), nil, model.DefaultSettings(), &captureNotifier{}, &captureRecorder{})
	if err := s.Register("not a cron spec"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
