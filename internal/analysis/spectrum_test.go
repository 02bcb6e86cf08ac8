package analysis

import (
	"math"
	"testing"
)

func repeat(cycle []float64, n int) []float64 {
	out := make([]float64, 0, len(cycle)*n)
	for range n {
		out = append(out, cycle...)
	}
	return out
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want float64
	}{
		{"constant", repeat([]float64{4}, 32), 0},
		{"empty", nil, 0},
		{"single", []float64{7}, 0},
		{"period 2", repeat([]float64{1, 5}, 32), 2},
		{"period 4", repeat([]float64{0, 1, 0, -1}, 16), 4},
		{"odd length", repeat([]float64{3, 3, 9}, 11), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DominantPeriod(tt.data)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("DominantPeriod = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPowerSpectrumRemovesMean(t *testing.T) {
	ps := PowerSpectrum(repeat([]float64{10, 12}, 8))
	if len(ps) != 9 {
		t.Fatalf("expected 9 bins, got %d", len(ps))
	}
	if ps[0] > 1e-9 {
		t.Errorf("DC bin should be zero, got %v", ps[0])
	}
	if math.Abs(ps[8]-16) > 1e-6 {
		t.Errorf("expected Nyquist magnitude 16, got %v", ps[8])
	}
}
