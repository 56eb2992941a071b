package canvas

import (
	"math"
	"testing"
)

func TestGridStep(t *testing.T) {
	tests := []struct {
		span, want float64
	}{
		{4, 0.5},
		{8, 1},
		{16, 2},
		{40, 5},
		{70, 10},
		{1e-9, 1e-10},
		{0, 1},
		{-3, 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		got := GridStep(tt.span)
		if math.Abs(got-tt.want) > 1e-12*tt.want {
			t.Errorf("GridStep(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestTicks(t *testing.T) {
	got := Ticks(-1.2, 1.3, 0.5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(got) != len(want) {
		t.Fatalf("Ticks = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}

	if Ticks(1, 0, 0.1) != nil {
		t.Error("inverted range should give no ticks")
	}
	if Ticks(0, 1, 0) != nil {
		t.Error("zero step should give no ticks")
	}
	if Ticks(0, 1000, 0.001) != nil {
		t.Error("runaway tick count should give no ticks")
	}
}
