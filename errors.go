// errors.go
package nursepy

import "fmt"

// ConfigConflictError is returned when Auto is enabled together with a manual
// column list or label-encode map. Automatic mode derives its own column
// assignment from dtypes and must not silently override caller intent.
type ConfigConflictError struct {
	Field string
}

func (e *ConfigConflictError) Error() string {
	return fmt.Sprintf("you cannot manually set %s when Auto is enabled", e.Field)
}

// OverlappingColumnsError is returned when a column is claimed by more than
// one transformation group.
type OverlappingColumnsError struct {
	Column string
	First  string
	Second string
}

func (e *OverlappingColumnsError) Error() string {
	return fmt.Sprintf("column %q is claimed by both %s and %s", e.Column, e.First, e.Second)
}

// UnknownCategoryError is returned when a one-hot column has no categories to
// enumerate at fit time, or holds a value at transform time that was absent
// from the training data.
type UnknownCategoryError struct {
	Column string
	Value  string
	// Empty marks the fit-time case: the column had nothing to enumerate.
	Empty bool
}

func (e *UnknownCategoryError) Error() string {
	if e.Empty {
		return fmt.Sprintf("one-hot column %q has no categories to enumerate", e.Column)
	}
	return fmt.Sprintf("unknown category %q in one-hot column %q", e.Value, e.Column)
}

// UnseenLabelError is returned when a label-encoded column holds a value that
// is absent from the caller-provided class list.
type UnseenLabelError struct {
	Column string
	Value  string
}

func (e *UnseenLabelError) Error() string {
	return fmt.Sprintf("unseen label %q in column %q", e.Value, e.Column)
}
