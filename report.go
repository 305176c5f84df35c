// report.go
package nursepy

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// reportBins is the histogram bin count used for numeric columns.
const reportBins = 20

// reportTopValues caps how many categories a frequency chart shows.
const reportTopValues = 30

// WriteReport renders one bar chart per column into a self-contained HTML
// page: histograms for numeric columns, value frequencies for the rest.
func WriteReport(f *Frame, filePath string) error {
	page := components.NewPage()
	page.PageTitle = "nursepy report"

	for _, name := range f.Columns() {
		col := f.Column(name)
		if col.IsNumeric() {
			page.AddCharts(histogramChart(name, col.Floats))
			continue
		}
		page.AddCharts(frequencyChart(name, col))
	}

	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "create %s", filePath)
	}
	defer file.Close()
	return page.Render(file)
}

func histogramChart(name string, values []float64) *charts.Bar {
	labels, counts := histogramBins(values, reportBins)
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: name}))
	bar.SetXAxis(labels).AddSeries("count", data)
	return bar
}

func frequencyChart(name string, col *Series) *charts.Bar {
	counts := map[string]int{}
	for i := 0; i < col.Len(); i++ {
		counts[col.CellString(i)]++
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	// Most frequent first, name as tiebreaker.
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})
	if len(values) > reportTopValues {
		values = values[:reportTopValues]
	}

	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: counts[v]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: name}))
	bar.SetXAxis(values).AddSeries("count", data)
	return bar
}

// histogramBins splits the value range into equal-width bins and counts the
// non-missing values per bin.
func histogramBins(values []float64, bins int) ([]string, []int) {
	sorted := dropMissing(values)
	if len(sorted) == 0 {
		return []string{}, []int{}
	}
	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		return []string{fmt.Sprintf("%.2f", min)}, []int{len(sorted)}
	}
	width := (max - min) / float64(bins)
	labels := make([]string, bins)
	counts := make([]int, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", min+width*float64(i))
	}
	for _, v := range sorted {
		bin := int((v - min) / width)
		if bin >= bins {
			bin = bins - 1
		}
		counts[bin]++
	}
	return labels, counts
}
