// transformer.go
package nursepy

import (
	"github.com/pivolan/go_utils"
	"github.com/pkg/errors"
)

func columnNotFound(name string) error {
	return errors.Errorf("column %q not found in frame", name)
}

func requireColumn(f *Frame, name string) (*Series, error) {
	col := f.Column(name)
	if col == nil {
		return nil, columnNotFound(name)
	}
	return col, nil
}

// ColumnTransformer applies the five-group transformation plan: categorical
// impute, numeric impute, one-hot, standard scale, robust scale. Columns not
// claimed by any group pass through unchanged. Fit learns parameters from the
// training frame only; Transform never refits.
type ColumnTransformer struct {
	oneHotColumns []string
	catImputer    *constantImputer
	numImputer    *medianImputer
	encoder       *oneHotEncoder
	standard      *standardScaler
	robust        *robustScaler
	fitted        bool
}

// newColumnTransformer builds the plan. In automatic mode the train frame's
// dtypes decide the assignment: float columns are standard-scaled, string and
// bool columns one-hot encoded with the first category dropped. Imputation
// groups stay empty in automatic mode.
func newColumnTransformer(opts Options, train *Frame) *ColumnTransformer {
	oneHot := opts.OneHot
	standardScale := opts.StandardScale
	dropFirst := false
	if opts.Auto {
		standardScale = train.numericColumns()
		oneHot = train.categoricalColumns()
		dropFirst = true
	}
	return &ColumnTransformer{
		oneHotColumns: oneHot,
		catImputer:    newConstantImputer(opts.CategoricalImpute),
		numImputer:    newMedianImputer(opts.NumericImpute),
		encoder:       newOneHotEncoder(oneHot, dropFirst),
		standard:      newStandardScaler(standardScale),
		robust:        newRobustScaler(opts.RobustScale),
	}
}

// Fit learns fill values, vocabularies and scaling statistics from the
// training frame.
func (t *ColumnTransformer) Fit(train *Frame) error {
	if err := t.catImputer.fit(train); err != nil {
		return err
	}
	if err := t.numImputer.fit(train); err != nil {
		return err
	}
	if err := t.encoder.fit(train); err != nil {
		return err
	}
	if err := t.standard.fit(train); err != nil {
		return err
	}
	if err := t.robust.fit(train); err != nil {
		return err
	}
	t.fitted = true
	return nil
}

// FeatureNames returns the output column order for a frame with the given
// input columns: one-hot indicator columns first, then every remaining input
// column in its original relative order.
func (t *ColumnTransformer) FeatureNames(inputColumns []string) []string {
	names := t.encoder.featureNames()
	for _, name := range inputColumns {
		if !go_utils.InArray(name, t.oneHotColumns) {
			names = append(names, name)
		}
	}
	return names
}

// Transform applies the fitted plan to a frame and returns a new frame. The
// input frame is not modified. Row order and row count are preserved.
func (t *ColumnTransformer) Transform(f *Frame) (*Frame, error) {
	if !t.fitted {
		return nil, errors.New("transformer must be fitted before transform")
	}
	out := f.Copy()
	t.catImputer.apply(out)
	t.numImputer.apply(out)
	t.standard.apply(out)
	t.robust.apply(out)

	indicators, err := t.encoder.encode(out)
	if err != nil {
		return nil, err
	}
	columns := append([]*Series{}, indicators...)
	for _, name := range out.Columns() {
		if go_utils.InArray(name, t.oneHotColumns) {
			continue
		}
		columns = append(columns, out.Column(name))
	}
	return NewFrame(columns...)
}
