// scaler.go
package nursepy

import "math"

// standardScaler centers numeric columns on the training mean and divides by
// the training (population) standard deviation. Missing values are ignored at
// fit time and propagate unchanged through transform.
type standardScaler struct {
	columns []string
	center  map[string]float64
	scale   map[string]float64
}

func newStandardScaler(columns []string) *standardScaler {
	return &standardScaler{
		columns: columns,
		center:  map[string]float64{},
		scale:   map[string]float64{},
	}
}

func (s *standardScaler) fit(train *Frame) error {
	for _, name := range s.columns {
		col, err := requireColumn(train, name)
		if err != nil {
			return err
		}
		if !col.IsNumeric() {
			continue
		}
		s.center[name] = mean(col.Floats)
		s.scale[name] = safeScale(stddev(col.Floats))
	}
	return nil
}

func (s *standardScaler) apply(f *Frame) {
	applyScaling(f, s.columns, s.center, s.scale)
}

// robustScaler centers on the training median and divides by the training
// interquartile range, which keeps outliers from dominating the scale.
type robustScaler struct {
	columns []string
	center  map[string]float64
	scale   map[string]float64
}

func newRobustScaler(columns []string) *robustScaler {
	return &robustScaler{
		columns: columns,
		center:  map[string]float64{},
		scale:   map[string]float64{},
	}
}

func (s *robustScaler) fit(train *Frame) error {
	for _, name := range s.columns {
		col, err := requireColumn(train, name)
		if err != nil {
			return err
		}
		if !col.IsNumeric() {
			continue
		}
		s.center[name] = median(col.Floats)
		s.scale[name] = safeScale(iqr(col.Floats))
	}
	return nil
}

func (s *robustScaler) apply(f *Frame) {
	applyScaling(f, s.columns, s.center, s.scale)
}

// safeScale maps a zero or undefined spread to 1 so that constant columns
// scale to zero instead of dividing by zero.
func safeScale(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return 1
	}
	return v
}

func applyScaling(f *Frame, columns []string, center, scale map[string]float64) {
	for _, name := range columns {
		col := f.Column(name)
		if col == nil || !col.IsNumeric() {
			continue
		}
		c, ok := center[name]
		if !ok {
			continue
		}
		s := scale[name]
		for i, v := range col.Floats {
			if math.IsNaN(v) {
				continue
			}
			col.Floats[i] = (v - c) / s
		}
	}
}
