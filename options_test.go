package nursepy

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsAutoRejectsManualSettings(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"one hot", Options{Auto: true, OneHot: []string{"city"}}, "OneHot"},
		{"standard scale", Options{Auto: true, StandardScale: []string{"age"}}, "StandardScale"},
		{"robust scale", Options{Auto: true, RobustScale: []string{"age"}}, "RobustScale"},
		{"numeric impute", Options{Auto: true, NumericImpute: []string{"age"}}, "NumericImpute"},
		{"categorical impute", Options{Auto: true, CategoricalImpute: []string{"city"}}, "CategoricalImpute"},
		{"label encode", Options{Auto: true, LabelEncode: map[string][]string{"grade": {"A"}}}, "LabelEncode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			var conflict *ConfigConflictError
			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, tt.want, conflict.Field)
		})
	}
}

func TestOptionsAutoAloneIsValid(t *testing.T) {
	assert.NoError(t, Options{Auto: true}.validate())
	assert.NoError(t, Options{}.validate())
}

func TestOptionsOverlappingColumns(t *testing.T) {
	opts := Options{
		OneHot:        []string{"city"},
		StandardScale: []string{"age", "city"},
	}
	err := opts.validate()
	var overlap *OverlappingColumnsError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, "city", overlap.Column)
	assert.Equal(t, "OneHot", overlap.First)
	assert.Equal(t, "StandardScale", overlap.Second)
}

func TestOptionsDisjointGroupsAreValid(t *testing.T) {
	opts := Options{
		OneHot:            []string{"city"},
		StandardScale:     []string{"age"},
		RobustScale:       []string{"income"},
		NumericImpute:     []string{"height"},
		CategoricalImpute: []string{"kind"},
		LabelEncode:       map[string][]string{"grade": {"A", "B"}},
	}
	assert.NoError(t, opts.validate())
}
