// stats.go
package nursepy

import (
	"math"
	"sort"
)

// dropMissing returns the non-NaN values, sorted ascending.
func dropMissing(values []float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	sort.Float64s(kept)
	return kept
}

// calculateQuantile computes the p-quantile of a sorted slice with linear
// interpolation between the two nearest ranks.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	return lower + fraction*(upper-lower)
}

// mean averages the non-missing values. NaN when there are none.
func mean(values []float64) float64 {
	sum := 0.0
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// stddev is the population standard deviation of the non-missing values.
func stddev(values []float64) float64 {
	m := mean(values)
	if math.IsNaN(m) {
		return math.NaN()
	}
	sum := 0.0
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - m
		sum += d * d
		n++
	}
	return math.Sqrt(sum / float64(n))
}

// median of the non-missing values. NaN when there are none.
func median(values []float64) float64 {
	return calculateQuantile(dropMissing(values), 0.5)
}

// iqr is the interquartile range of the non-missing values.
func iqr(values []float64) float64 {
	sorted := dropMissing(values)
	return calculateQuantile(sorted, 0.75) - calculateQuantile(sorted, 0.25)
}

// roundToTwo rounds to two decimal places, for summary display only.
func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}
