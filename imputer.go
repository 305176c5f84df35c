// imputer.go
package nursepy

import "math"

// missingFill is the literal value written into imputed categorical cells.
const missingFill = "missing"

// constantImputer fills missing categorical values with a fixed literal.
// Nothing is learned at fit time; fitting only records the target columns.
type constantImputer struct {
	columns []string
	fill    string
}

func newConstantImputer(columns []string) *constantImputer {
	return &constantImputer{columns: columns, fill: missingFill}
}

func (m *constantImputer) fit(train *Frame) error {
	for _, name := range m.columns {
		if _, err := requireColumn(train, name); err != nil {
			return err
		}
	}
	return nil
}

// apply mutates the frame in place, filling "" cells in string columns.
// Float and bool columns are left untouched; use medianImputer for numerics.
func (m *constantImputer) apply(f *Frame) {
	for _, name := range m.columns {
		col := f.Column(name)
		if col == nil || col.Type != String {
			continue
		}
		for i, v := range col.Strings {
			if v == "" {
				col.Strings[i] = m.fill
			}
		}
	}
}

// medianImputer fills NaN values in numeric columns with the median learned
// from the training frame.
type medianImputer struct {
	columns []string
	medians map[string]float64
}

func newMedianImputer(columns []string) *medianImputer {
	return &medianImputer{columns: columns, medians: map[string]float64{}}
}

func (m *medianImputer) fit(train *Frame) error {
	for _, name := range m.columns {
		col, err := requireColumn(train, name)
		if err != nil {
			return err
		}
		if !col.IsNumeric() {
			continue
		}
		m.medians[name] = median(col.Floats)
	}
	return nil
}

func (m *medianImputer) apply(f *Frame) {
	for _, name := range m.columns {
		col := f.Column(name)
		if col == nil || !col.IsNumeric() {
			continue
		}
		fill, ok := m.medians[name]
		if !ok || math.IsNaN(fill) {
			continue
		}
		for i, v := range col.Floats {
			if math.IsNaN(v) {
				col.Floats[i] = fill
			}
		}
	}
}
