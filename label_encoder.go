// label_encoder.go
package nursepy

// LabelEncoder maps an explicit ordered class list to consecutive integer
// codes: the first class encodes as 0, the second as 1, and so on. Unlike
// one-hot vocabularies the class order is the caller's, never sorted.
type LabelEncoder struct {
	classes []string
	codes   map[string]int
}

// NewLabelEncoder fits an encoder on the given class order. A class listed
// twice keeps its first position.
func NewLabelEncoder(classes []string) *LabelEncoder {
	codes := map[string]int{}
	for i, class := range classes {
		if _, ok := codes[class]; !ok {
			codes[class] = i
		}
	}
	return &LabelEncoder{classes: classes, codes: codes}
}

// Classes returns the fitted class list.
func (le *LabelEncoder) Classes() []string {
	return le.classes
}

// Transform encodes values into float codes suitable for a numeric series.
// A value absent from the class list is an UnseenLabelError; column names the
// series being encoded for error context.
func (le *LabelEncoder) Transform(column string, values []string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		code, ok := le.codes[v]
		if !ok {
			return nil, &UnseenLabelError{Column: column, Value: v}
		}
		out[i] = float64(code)
	}
	return out, nil
}

// encodeColumn overwrites the named column of the frame with its integer
// codes, keeping the column's position and name.
func (le *LabelEncoder) encodeColumn(f *Frame, column string) error {
	col := f.Column(column)
	if col == nil {
		return columnNotFound(column)
	}
	values := make([]string, col.Len())
	for i := range values {
		values[i] = col.CellString(i)
	}
	codes, err := le.Transform(column, values)
	if err != nil {
		return err
	}
	f.replaceColumn(column, NewFloatSeries(column, codes))
	return nil
}
