package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SignalScope/internal/model"
)

func TestFormatScanReport(t *testing.T) {
	latest := model.EnrichedBar{
		Bar: model.Bar{
			Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Open: 100, High: 103, Low: 99, Close: 102, Volume: 5000,
		},
		EMA20:         model.Float(101.2),
		EMA50:         model.Float(100.1),
		RSI:           28.4,
		MACDLine:      model.Float(0.31),
		MACDSignal:    model.Float(0.22),
		MACDHistogram: model.Float(0.09),
		VolumeRatio:   model.Float(1.8),
	}
	sig := &model.ReversalSignal{
		Type:     model.ReversalBullish,
		Strength: 70,
		Reasons:  []string{"RSI Oversold", "Volume Surge (Up)"},
	}

	report := FormatScanReport("BTCUSD", latest, sig)
	for _, want := range []string{
		"BTCUSD",
		"Close: 102.00",
		"EMA20: 101.20",
		"RSI: 28.4",
		"Reversal: BULLISH (strength 70)",
		"- RSI Oversold",
		"- Volume Surge (Up)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestFormatScanReport_NoSignal(t *testing.T) {
	latest := model.EnrichedBar{
		Bar: model.Bar{Time: time.Now(), Close: 50},
	}
	report := FormatScanReport("X", latest, nil)
	if !strings.Contains(report, "No actionable reversal signal") {
		t.Errorf("expected quiet report, got:\n%s", report)
	}
	if strings.Contains(report, "EMA20") {
		t.Error("undefined indicators must be omitted")
	}
}

func TestWebhookNotifier_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	if err := n.Send("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["text"] != "hello" {
		t.Errorf("payload = %v", got)
	}
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	if err := n.Send("hello"); err == nil {
		t.Error("expected error for non-2xx status")
	}
}
