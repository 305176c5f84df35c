package plot

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DrawHistogram renders a PNG histogram of the values with the given number
// of equal-width bins. Useful to eyeball a column's distribution before and
// after scaling.
func DrawHistogram(values []float64, bins int, title string) ([]byte, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("bins must be positive, got %d", bins)
	}
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no values to plot")
	}
	sort.Float64s(kept)

	min, max := kept[0], kept[len(kept)-1]
	if min == max {
		// A constant column still gets a single-bar chart.
		max = min + 1
	}
	width := (max - min) / float64(bins)
	counts := make([]float64, bins)
	for _, v := range kept {
		bin := int((v - min) / width)
		if bin >= bins {
			bin = bins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, bins)
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: c,
			Label: fmt.Sprintf("%.1f", min+width*(float64(i)+0.5)),
			Style: chart.Style{
				FillColor:   drawing.ColorBlue.WithAlpha(160),
				StrokeColor: drawing.ColorBlue,
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title: title,
		TitleStyle: chart.Style{
			FontSize: 14.0,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 40,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:    1024,
		Height:   768,
		BarWidth: 900 / bins,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}
