package calculator

import (
	"math"
	"testing"
)

func TestVolumeMA_WarmupFallback(t *testing.T) {
	volumes := []float64{500, 600, 700, 800}
	ma, ratio, err := VolumeMA(volumes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Warm-up: ma falls back to the bar's own volume, ratio to 1.
	for i := 0; i < 2; i++ {
		if ma[i] != volumes[i] {
			t.Errorf("ma[%d] = %v, want %v", i, ma[i], volumes[i])
		}
		if ratio[i] != 1 {
			t.Errorf("ratio[%d] = %v, want 1", i, ratio[i])
		}
	}
	if math.Abs(ma[2]-600) > 1e-12 {
		t.Errorf("ma[2] = %v, want 600", ma[2])
	}
	if math.Abs(ratio[2]-700.0/600.0) > 1e-12 {
		t.Errorf("ratio[2] = %v, want %v", ratio[2], 700.0/600.0)
	}
	if math.Abs(ma[3]-700) > 1e-12 {
		t.Errorf("ma[3] = %v, want 700", ma[3])
	}
}

func TestVolumeMA_ZeroAverageGuard(t *testing.T) {
	volumes := []float64{0, 0, 0, 0, 0}
	_, ratio, err := VolumeMA(volumes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range ratio {
		if r != 1 {
			t.Errorf("ratio[%d] = %v, want 1 when rolling average is 0", i, r)
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Errorf("ratio[%d] must not be NaN/Inf", i)
		}
	}
}

func TestVolumeMA_InvalidPeriod(t *testing.T) {
	if _, _, err := VolumeMA([]float64{1}, 0); err == nil {
		t.Error("expected error for period 0")
	}
}
