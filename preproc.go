// preproc.go
package nursepy

import (
	"sort"

	"github.com/pkg/errors"
)

// Preproc fits a transformation plan on the train frame and applies it to the
// train frame and, when present, the test frame. The input frames are copied
// before any mutation, so the caller's frames survive unchanged.
//
// The returned frames hold, in order, the expanded one-hot indicator columns
// followed by every remaining column in its original relative order. After
// the column transforms, each column named in opts.LabelEncode is overwritten
// in place with its integer codes. When test is nil the second return value
// is nil.
func Preproc(train, test *Frame, opts Options) (*Frame, *Frame, error) {
	if train == nil {
		return nil, nil, errors.New("train frame is required, got nil")
	}
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}
	if test != nil {
		if err := sameColumns(train, test); err != nil {
			return nil, nil, err
		}
	}

	transformer := newColumnTransformer(opts, train)
	if err := transformer.Fit(train); err != nil {
		return nil, nil, err
	}
	outTrain, err := transformer.Transform(train)
	if err != nil {
		return nil, nil, errors.Wrap(err, "transform train")
	}
	var outTest *Frame
	if test != nil {
		outTest, err = transformer.Transform(test)
		if err != nil {
			return nil, nil, errors.Wrap(err, "transform test")
		}
	}

	// Label-encoding pass, applied to the transformer's output. Map order is
	// not deterministic, so columns are visited in sorted name order.
	labelColumns := make([]string, 0, len(opts.LabelEncode))
	for column := range opts.LabelEncode {
		labelColumns = append(labelColumns, column)
	}
	sort.Strings(labelColumns)
	for _, column := range labelColumns {
		le := NewLabelEncoder(opts.LabelEncode[column])
		if err := le.encodeColumn(outTrain, column); err != nil {
			return nil, nil, err
		}
		if outTest != nil {
			if err := le.encodeColumn(outTest, column); err != nil {
				return nil, nil, err
			}
		}
	}
	return outTrain, outTest, nil
}

// sameColumns checks that two frames share an identical column set in the
// same order before transformation.
func sameColumns(train, test *Frame) error {
	a, b := train.Columns(), test.Columns()
	if len(a) != len(b) {
		return errors.Errorf("train has %d columns, test has %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return errors.Errorf("column %d differs between train (%q) and test (%q)", i, a[i], b[i])
		}
	}
	return nil
}
