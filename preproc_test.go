package nursepy

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFrame(t *testing.T, columns ...*Series) *Frame {
	t.Helper()
	f, err := NewFrame(columns...)
	require.NoError(t, err)
	return f
}

func trainFrame(t *testing.T) *Frame {
	return mustFrame(t,
		NewFloatSeries("age", []float64{25, math.NaN(), 35}),
		NewStringSeries("city", []string{"NY", "LA", "NY"}),
	)
}

func TestPreprocAutoScalesAndEncodes(t *testing.T) {
	outTrain, outTest, err := Preproc(trainFrame(t), nil, Options{Auto: true})
	require.NoError(t, err)
	assert.Nil(t, outTest)

	// First category ("LA") is dropped in auto mode.
	assert.Equal(t, []string{"city_NY", "age"}, outTrain.Columns())
	assert.Equal(t, []float64{1, 0, 1}, outTrain.Column("city_NY").Floats)

	// age mean 30, population std 5; NaN is not imputed in auto mode.
	age := outTrain.Column("age").Floats
	assert.InDelta(t, -1, age[0], 1e-9)
	assert.True(t, math.IsNaN(age[1]))
	assert.InDelta(t, 1, age[2], 1e-9)
}

func TestPreprocManualKeepsAllCategories(t *testing.T) {
	out, _, err := Preproc(trainFrame(t), nil, Options{OneHot: []string{"city"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"city_LA", "city_NY", "age"}, out.Columns())
	assert.Equal(t, []float64{0, 1, 0}, out.Column("city_LA").Floats)
	assert.Equal(t, []float64{1, 0, 1}, out.Column("city_NY").Floats)
}

func TestPreprocTestFrameUsesTrainParameters(t *testing.T) {
	train := mustFrame(t,
		NewFloatSeries("age", []float64{20, 30, 40}),
		NewStringSeries("city", []string{"NY", "LA", "NY"}),
	)
	test := mustFrame(t,
		NewFloatSeries("age", []float64{30, 30}),
		NewStringSeries("city", []string{"LA", "LA"}),
	)
	_, outTest, err := Preproc(train, test, Options{Auto: true})
	require.NoError(t, err)

	// Centered by the train mean, not the test mean.
	assert.Equal(t, []float64{0, 0}, outTest.Column("age").Floats)
	assert.Equal(t, []float64{0, 0}, outTest.Column("city_NY").Floats)
	assert.Equal(t, 2, outTest.Rows())
}

func TestPreprocTrainAsTestIsIdentical(t *testing.T) {
	outTrain, outTest, err := Preproc(trainFrame(t), trainFrame(t), Options{Auto: true})
	require.NoError(t, err)

	require.Equal(t, outTrain.Columns(), outTest.Columns())
	for _, name := range outTrain.Columns() {
		a, b := outTrain.Column(name), outTest.Column(name)
		require.Equal(t, a.Len(), b.Len())
		for i := 0; i < a.Len(); i++ {
			if a.IsMissing(i) {
				assert.True(t, b.IsMissing(i))
				continue
			}
			assert.Equal(t, a.Floats[i], b.Floats[i], "column %s row %d", name, i)
		}
	}
}

func TestPreprocDoesNotMutateInputs(t *testing.T) {
	train := trainFrame(t)
	_, _, err := Preproc(train, nil, Options{Auto: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"age", "city"}, train.Columns())
	assert.Equal(t, 25.0, train.Column("age").Floats[0])
	assert.Equal(t, "NY", train.Column("city").Strings[0])
}

func TestPreprocRepeatedTransformIsIdempotent(t *testing.T) {
	train := mustFrame(t,
		NewFloatSeries("age", []float64{20, 30, 40}),
		NewStringSeries("city", []string{"NY", "LA", "NY"}),
	)
	test := mustFrame(t,
		NewFloatSeries("age", []float64{25, 35}),
		NewStringSeries("city", []string{"NY", "LA"}),
	)
	_, first, err := Preproc(train, test, Options{Auto: true})
	require.NoError(t, err)
	_, second, err := Preproc(train, test, Options{Auto: true})
	require.NoError(t, err)

	require.Equal(t, first.Columns(), second.Columns())
	for _, name := range first.Columns() {
		assert.Equal(t, first.Column(name).Floats, second.Column(name).Floats)
	}
}

func TestPreprocColumnCoverage(t *testing.T) {
	train := mustFrame(t,
		NewFloatSeries("age", []float64{20, 30, 40}),
		NewStringSeries("city", []string{"NY", "LA", "SF"}),
		NewStringSeries("note", []string{"a", "b", "c"}),
		NewBoolSeries("member", []bool{true, false, true}),
	)
	out, _, err := Preproc(train, nil, Options{
		OneHot:        []string{"city"},
		StandardScale: []string{"age"},
	})
	require.NoError(t, err)

	// One-hot sources expand, everything else keeps its name and slot.
	assert.Equal(t, []string{"city_LA", "city_NY", "city_SF", "age", "note", "member"}, out.Columns())
	assert.Equal(t, 3, out.Rows())
	// Passthrough columns arrive untouched in their original row order.
	assert.Equal(t, []string{"a", "b", "c"}, out.Column("note").Strings)
	assert.Equal(t, []bool{true, false, true}, out.Column("member").Bools)
}

func TestPreprocImputeThenScale(t *testing.T) {
	train := mustFrame(t,
		NewFloatSeries("income", []float64{1, math.NaN(), 3, 5}),
		NewStringSeries("kind", []string{"x", "", "y", "x"}),
	)
	out, _, err := Preproc(train, nil, Options{
		NumericImpute:     []string{"income"},
		CategoricalImpute: []string{"kind"},
	})
	require.NoError(t, err)

	// Median of {1,3,5} is 3.
	assert.Equal(t, []float64{1, 3, 3, 5}, out.Column("income").Floats)
	assert.Equal(t, []string{"x", "missing", "y", "x"}, out.Column("kind").Strings)
}

func TestPreprocRobustScale(t *testing.T) {
	train := mustFrame(t, NewFloatSeries("v", []float64{1, 2, 3, 4, 100}))
	out, _, err := Preproc(train, nil, Options{RobustScale: []string{"v"}})
	require.NoError(t, err)

	// median 3, IQR 2; the outlier does not blow up the scale.
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 48.5}, out.Column("v").Floats)
}

func TestPreprocLabelEncode(t *testing.T) {
	train := mustFrame(t, NewStringSeries("grade", []string{"A", "F", "C"}))
	test := mustFrame(t, NewStringSeries("grade", []string{"B", "B", "F"}))

	opts := Options{LabelEncode: map[string][]string{"grade": {"F", "D", "C", "B", "A"}}}
	outTrain, outTest, err := Preproc(train, test, opts)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 0, 2}, outTrain.Column("grade").Floats)
	assert.Equal(t, []float64{3, 3, 0}, outTest.Column("grade").Floats)
}

func TestPreprocLabelEncodeUnseenLabel(t *testing.T) {
	train := mustFrame(t, NewStringSeries("grade", []string{"A", "Z"}))
	opts := Options{LabelEncode: map[string][]string{"grade": {"F", "D", "C", "B", "A"}}}

	_, _, err := Preproc(train, nil, opts)
	var unseen *UnseenLabelError
	require.True(t, errors.As(err, &unseen))
	assert.Equal(t, "grade", unseen.Column)
	assert.Equal(t, "Z", unseen.Value)
}

func TestPreprocUnknownCategoryInTest(t *testing.T) {
	train := mustFrame(t, NewStringSeries("city", []string{"NY", "LA"}))
	test := mustFrame(t, NewStringSeries("city", []string{"SF"}))

	_, _, err := Preproc(train, test, Options{OneHot: []string{"city"}})
	var unknown *UnknownCategoryError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "city", unknown.Column)
	assert.Equal(t, "SF", unknown.Value)
}

func TestPreprocNilTrain(t *testing.T) {
	_, _, err := Preproc(nil, nil, Options{Auto: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "train")
}

func TestPreprocColumnSetMismatch(t *testing.T) {
	train := mustFrame(t, NewFloatSeries("age", []float64{1}))
	test := mustFrame(t, NewFloatSeries("income", []float64{1}))
	_, _, err := Preproc(train, test, Options{})
	require.Error(t, err)
}

func TestPreprocUnknownColumnInPlan(t *testing.T) {
	train := mustFrame(t, NewFloatSeries("age", []float64{1, 2}))
	_, _, err := Preproc(train, nil, Options{StandardScale: []string{"weight"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}
