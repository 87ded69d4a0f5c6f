package calculator

import (
	"math"
	"testing"
)

func TestBollingerBands_KnownWindow(t *testing.T) {
	// Window {2, 4, 6}: mean 4, population variance ((4+0+4)/3), sd sqrt(8/3).
	closes := []float64{2, 4, 6}
	upper, middle, lower, err := BollingerBands(closes, 3, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upper[0] != nil || middle[1] != nil {
		t.Error("warm-up indices should be nil")
	}
	if middle[2] == nil {
		t.Fatal("index 2 should be defined")
	}
	sd := math.Sqrt(8.0 / 3.0)
	if math.Abs(*middle[2]-4) > 1e-12 {
		t.Errorf("middle = %v, want 4", *middle[2])
	}
	if math.Abs(*upper[2]-(4+2*sd)) > 1e-12 {
		t.Errorf("upper = %v, want %v", *upper[2], 4+2*sd)
	}
	if math.Abs(*lower[2]-(4-2*sd)) > 1e-12 {
		t.Errorf("lower = %v, want %v", *lower[2], 4-2*sd)
	}
}

func TestBollingerBands_MiddleEqualsSMA(t *testing.T) {
	closes := make([]float64, 50)
	closes[0] = 100
	for i := 1; i < len(closes); i++ {
		closes[i] = closes[i-1] + math.Cos(float64(i))*3
	}
	_, middle, _, err := BollingerBands(closes, 20, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sma, err := SMA(closes, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range closes {
		if (middle[i] == nil) != (sma[i] == nil) {
			t.Fatalf("index %d: definedness mismatch", i)
		}
		if middle[i] != nil && math.Abs(*middle[i]-*sma[i]) > 1e-9 {
			t.Errorf("index %d: middle %v != sma %v", i, *middle[i], *sma[i])
		}
	}
}

func TestBollingerBands_FlatSeriesCollapses(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	upper, middle, lower, err := BollingerBands(closes, 20, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 19; i < 30; i++ {
		if *upper[i] != 100 || *middle[i] != 100 || *lower[i] != 100 {
			t.Errorf("index %d: flat series bands must collapse to 100 (got %v/%v/%v)",
				i, *upper[i], *middle[i], *lower[i])
		}
	}
}

func TestBollingerBands_InvalidPeriod(t *testing.T) {
	if _, _, _, err := BollingerBands([]float64{1}, 0, 2.0); err == nil {
		t.Error("expected error for period 0")
	}
}
