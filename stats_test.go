package nursepy

import (
	"math"
	"testing"
)

func TestCalculateQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"median of even count interpolates", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"median of odd count", []float64{1, 2, 3}, 0.5, 2},
		{"first quartile", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"third quartile", []float64{1, 2, 3, 4}, 0.75, 3.25},
		{"min", []float64{1, 2, 3}, 0, 1},
		{"max", []float64{1, 2, 3}, 1, 3},
		{"single value", []float64{7}, 0.5, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateQuantile(tt.sorted, tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("calculateQuantile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}

	if got := calculateQuantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("quantile of empty slice = %v, want NaN", got)
	}
}

func TestMeanAndStddevIgnoreMissing(t *testing.T) {
	values := []float64{25, math.NaN(), 35}
	if got := mean(values); got != 30 {
		t.Errorf("mean = %v, want 30", got)
	}
	if got := stddev(values); got != 5 {
		t.Errorf("stddev = %v, want 5", got)
	}
	if got := mean([]float64{math.NaN()}); !math.IsNaN(got) {
		t.Errorf("mean of all-missing = %v, want NaN", got)
	}
}

func TestMedianAndIQR(t *testing.T) {
	values := []float64{4, 1, math.NaN(), 3, 2}
	if got := median(values); got != 2.5 {
		t.Errorf("median = %v, want 2.5", got)
	}
	if got := iqr(values); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("iqr = %v, want 1.5", got)
	}
}
