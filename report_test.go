package nursepy

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramBins(t *testing.T) {
	labels, counts := histogramBins([]float64{0, 1, 2, 3, math.NaN()}, 2)
	require.Len(t, labels, 2)
	// Values 0,1 in the first bin; 2,3 in the second (max lands in the last).
	if !reflect.DeepEqual(counts, []int{2, 2}) {
		t.Errorf("counts = %v, want [2 2]", counts)
	}

	labels, counts = histogramBins([]float64{5, 5, 5}, 10)
	assert.Equal(t, []string{"5.00"}, labels)
	assert.Equal(t, []int{3}, counts)

	labels, counts = histogramBins([]float64{math.NaN()}, 10)
	assert.Empty(t, labels)
	assert.Empty(t, counts)
}

func TestWriteReport(t *testing.T) {
	f := mustFrame(t,
		NewFloatSeries("age", []float64{20, 25, 30, 35, 40}),
		NewStringSeries("city", []string{"NY", "LA", "NY", "SF", "NY"}),
	)
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, WriteReport(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "age")
	assert.Contains(t, html, "city")
	assert.Contains(t, html, "echarts")
}
