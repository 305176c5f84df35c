// describe.go
package nursepy

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ColumnStat is the per-column summary shown by the CLI before and after
// preprocessing.
type ColumnStat struct {
	Type    DType
	Count   int
	Missing int
	Uniq    int
	Avg     float64
	Median  float64
	Min     float64
	Max     float64
	Q1      float64
	Q3      float64
	IQR     float64
}

// Describe computes summary statistics for every column. Numeric statistics
// are rounded to two decimals for display; non-numeric columns only carry
// counts.
func Describe(f *Frame) map[string]ColumnStat {
	stats := map[string]ColumnStat{}
	for _, name := range f.Columns() {
		col := f.Column(name)
		stat := ColumnStat{Type: col.Type, Count: col.Len()}

		uniq := map[string]bool{}
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				stat.Missing++
				continue
			}
			uniq[col.CellString(i)] = true
		}
		stat.Uniq = len(uniq)

		if col.IsNumeric() {
			sorted := dropMissing(col.Floats)
			if len(sorted) > 0 {
				stat.Avg = roundToTwo(mean(col.Floats))
				stat.Median = roundToTwo(calculateQuantile(sorted, 0.5))
				stat.Min = roundToTwo(sorted[0])
				stat.Max = roundToTwo(sorted[len(sorted)-1])
				stat.Q1 = roundToTwo(calculateQuantile(sorted, 0.25))
				stat.Q3 = roundToTwo(calculateQuantile(sorted, 0.75))
				stat.IQR = roundToTwo(stat.Q3 - stat.Q1)
			}
		}
		stats[name] = stat
	}
	return stats
}

// SummaryTable renders the stats as a text table, one row per column, sorted
// by column name so the output is stable.
func SummaryTable(stats map[string]ColumnStat) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Type", "Count", "Missing", "Uniq", "Avg", "Median", "Min", "Max", "IQR"})

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := stats[name]
		t.AppendRow(table.Row{name, string(s.Type), s.Count, s.Missing, s.Uniq, s.Avg, s.Median, s.Min, s.Max, s.IQR})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
