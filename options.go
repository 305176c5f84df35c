// options.go
package nursepy

// Options configures a Preproc call. The zero value transforms nothing and
// passes every column through unchanged.
//
// Auto is mutually exclusive with every other field: automatic mode assigns
// float columns to standard scaling and string/bool columns to one-hot
// encoding (dropping the first category per column) based on dtypes alone.
// Note that automatic mode performs no imputation; callers who need missing
// values filled before scaling must use the manual lists.
type Options struct {
	// Auto derives the transformation plan from column dtypes.
	Auto bool
	// OneHot lists columns to expand into indicator columns. Manual mode
	// keeps every category; only Auto drops the first one.
	OneHot []string
	// StandardScale lists columns to center and scale to unit variance.
	StandardScale []string
	// RobustScale lists columns to center on the median and scale by IQR.
	RobustScale []string
	// NumericImpute lists columns whose NaN values are filled with the
	// column median.
	NumericImpute []string
	// CategoricalImpute lists columns whose empty values are filled with
	// the literal "missing".
	CategoricalImpute []string
	// LabelEncode maps a column name to its ordered class list; the first
	// class encodes as 0, the second as 1, and so on. Applied after the
	// column transforms, overwriting the column in place.
	LabelEncode map[string][]string
}

// manualGroups pairs each manual list with the group name used in errors.
// The order here fixes the group application order of the plan.
func (o Options) manualGroups() []struct {
	Name    string
	Columns []string
} {
	return []struct {
		Name    string
		Columns []string
	}{
		{"CategoricalImpute", o.CategoricalImpute},
		{"NumericImpute", o.NumericImpute},
		{"OneHot", o.OneHot},
		{"StandardScale", o.StandardScale},
		{"RobustScale", o.RobustScale},
	}
}

// validate enforces the auto/manual exclusivity and group disjointness before
// any transformation work starts.
func (o Options) validate() error {
	if o.Auto {
		for _, group := range o.manualGroups() {
			if len(group.Columns) > 0 {
				return &ConfigConflictError{Field: group.Name}
			}
		}
		if len(o.LabelEncode) > 0 {
			return &ConfigConflictError{Field: "LabelEncode"}
		}
	}

	claimed := map[string]string{}
	for _, group := range o.manualGroups() {
		for _, column := range group.Columns {
			if first, ok := claimed[column]; ok {
				return &OverlappingColumnsError{Column: column, First: first, Second: group.Name}
			}
			claimed[column] = group.Name
		}
	}
	return nil
}
