package calculator

import (
	"math"
	"testing"
)

func TestSMA_WarmupAndValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out, err := SMA(values, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(values) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(values))
	}
	if out[0] != nil || out[1] != nil {
		t.Error("warm-up indices should be nil")
	}
	want := []float64{2, 3, 4}
	for i := 2; i < 5; i++ {
		if out[i] == nil {
			t.Fatalf("index %d should be defined", i)
		}
		if math.Abs(*out[i]-want[i-2]) > 1e-12 {
			t.Errorf("sma[%d] = %v, want %v", i, *out[i], want[i-2])
		}
	}
}

func TestSMA_InvalidPeriod(t *testing.T) {
	if _, err := SMA([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for period 0")
	}
	if _, err := SMA([]float64{1, 2}, -5); err == nil {
		t.Error("expected error for negative period")
	}
}

func TestSMA_SeriesShorterThanPeriod(t *testing.T) {
	out, err := SMA([]float64{1, 2}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != nil {
			t.Errorf("index %d should be nil", i)
		}
	}
}

func TestEMA_SeededWithFirstValue(t *testing.T) {
	values := []float64{10, 12, 14}
	out, err := EMA(values, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 10 {
		t.Errorf("ema[0] = %v, want seed 10", out[0])
	}
	// k = 2/(3+1) = 0.5
	if math.Abs(out[1]-11) > 1e-12 {
		t.Errorf("ema[1] = %v, want 11", out[1])
	}
	if math.Abs(out[2]-12.5) > 1e-12 {
		t.Errorf("ema[2] = %v, want 12.5", out[2])
	}
}

func TestEMA_ConstantSeries(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = 42.5
	}
	out, err := EMA(values, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != 42.5 {
			t.Fatalf("ema[%d] = %v, want 42.5 (constant-series law)", i, v)
		}
	}
}

func TestEMA_EmptyInput(t *testing.T) {
	out, err := EMA(nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
}

func TestEMA_InvalidPeriod(t *testing.T) {
	if _, err := EMA([]float64{1}, 0); err == nil {
		t.Error("expected error for period 0")
	}
}
