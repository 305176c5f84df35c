// frame.go
package nursepy

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// DType identifies the storage type of a Series. The names follow the
// ClickHouse-style type names used elsewhere in this package.
type DType string

const (
	Float64 DType = "Float64"
	String  DType = "String"
	Bool    DType = "Bool"
)

// Series is a single named column. Exactly one of the value slices is
// populated, matching Type. Missing values are NaN in Float64 columns and ""
// in String columns; Bool columns cannot hold a missing value.
type Series struct {
	Name    string
	Type    DType
	Floats  []float64
	Strings []string
	Bools   []bool
}

func NewFloatSeries(name string, values []float64) *Series {
	return &Series{Name: name, Type: Float64, Floats: values}
}

func NewStringSeries(name string, values []string) *Series {
	return &Series{Name: name, Type: String, Strings: values}
}

func NewBoolSeries(name string, values []bool) *Series {
	return &Series{Name: name, Type: Bool, Bools: values}
}

func (s *Series) Len() int {
	switch s.Type {
	case Float64:
		return len(s.Floats)
	case Bool:
		return len(s.Bools)
	default:
		return len(s.Strings)
	}
}

// IsNumeric reports whether the series participates in numeric transforms.
func (s *Series) IsNumeric() bool {
	return s.Type == Float64
}

// IsMissing reports whether the value at row i is a missing value marker.
func (s *Series) IsMissing(i int) bool {
	switch s.Type {
	case Float64:
		return math.IsNaN(s.Floats[i])
	case String:
		return s.Strings[i] == ""
	default:
		return false
	}
}

// CellString renders the value at row i as text. Bool values render as
// "true"/"false", floats with the shortest exact representation, NaN and ""
// as the empty string.
func (s *Series) CellString(i int) string {
	switch s.Type {
	case Float64:
		if math.IsNaN(s.Floats[i]) {
			return ""
		}
		return strconv.FormatFloat(s.Floats[i], 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(s.Bools[i])
	default:
		return s.Strings[i]
	}
}

func (s *Series) Copy() *Series {
	out := &Series{Name: s.Name, Type: s.Type}
	switch s.Type {
	case Float64:
		out.Floats = append([]float64(nil), s.Floats...)
	case Bool:
		out.Bools = append([]bool(nil), s.Bools...)
	default:
		out.Strings = append([]string(nil), s.Strings...)
	}
	return out
}

// Frame is an ordered collection of named columns with equal row counts.
type Frame struct {
	columns []*Series
}

// NewFrame builds a frame from the given columns. Column names must be
// unique and all columns must have the same length.
func NewFrame(columns ...*Series) (*Frame, error) {
	seen := map[string]bool{}
	rows := -1
	for _, col := range columns {
		if seen[col.Name] {
			return nil, errors.Errorf("duplicate column name %q", col.Name)
		}
		seen[col.Name] = true
		if rows == -1 {
			rows = col.Len()
		} else if col.Len() != rows {
			return nil, errors.Errorf("column %q has %d rows, want %d", col.Name, col.Len(), rows)
		}
	}
	return &Frame{columns: columns}, nil
}

// Rows returns the row count; zero for a frame without columns.
func (f *Frame) Rows() int {
	if len(f.columns) == 0 {
		return 0
	}
	return f.columns[0].Len()
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the named series or nil.
func (f *Frame) Column(name string) *Series {
	for _, col := range f.columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

// Copy returns a deep copy; mutating the copy never touches the original.
func (f *Frame) Copy() *Frame {
	columns := make([]*Series, len(f.columns))
	for i, col := range f.columns {
		columns[i] = col.Copy()
	}
	return &Frame{columns: columns}
}

// replaceColumn swaps the named column in place, keeping its position.
func (f *Frame) replaceColumn(name string, s *Series) bool {
	for i, col := range f.columns {
		if col.Name == name {
			s.Name = name
			f.columns[i] = s
			return true
		}
	}
	return false
}

// numericColumns returns the names of Float64 columns in order.
func (f *Frame) numericColumns() []string {
	names := []string{}
	for _, col := range f.columns {
		if col.IsNumeric() {
			names = append(names, col.Name)
		}
	}
	return names
}

// categoricalColumns returns the names of String and Bool columns in order.
func (f *Frame) categoricalColumns() []string {
	names := []string{}
	for _, col := range f.columns {
		if !col.IsNumeric() {
			names = append(names, col.Name)
		}
	}
	return names
}
