// onehot.go
package nursepy

import (
	"fmt"
	"sort"
)

// oneHotEncoder expands categorical columns into indicator columns, one per
// category seen in the training frame. With dropFirst the first category (in
// sorted order) produces no indicator, avoiding the dummy-variable trap.
type oneHotEncoder struct {
	columns    []string
	dropFirst  bool
	categories map[string][]string // sorted vocabulary per source column
}

func newOneHotEncoder(columns []string, dropFirst bool) *oneHotEncoder {
	return &oneHotEncoder{
		columns:    columns,
		dropFirst:  dropFirst,
		categories: map[string][]string{},
	}
}

func (e *oneHotEncoder) fit(train *Frame) error {
	for _, name := range e.columns {
		col, err := requireColumn(train, name)
		if err != nil {
			return err
		}
		seen := map[string]bool{}
		vocab := []string{}
		for i := 0; i < col.Len(); i++ {
			v := col.CellString(i)
			if !seen[v] {
				seen[v] = true
				vocab = append(vocab, v)
			}
		}
		if len(vocab) == 0 {
			return &UnknownCategoryError{Column: name, Empty: true}
		}
		sort.Strings(vocab)
		e.categories[name] = vocab
	}
	return nil
}

// retained returns the categories that produce indicator columns.
func (e *oneHotEncoder) retained(column string) []string {
	vocab := e.categories[column]
	if e.dropFirst && len(vocab) > 0 {
		return vocab[1:]
	}
	return vocab
}

// featureNames lists the indicator column names in output order: source
// columns in plan order, categories in sorted order within each.
func (e *oneHotEncoder) featureNames() []string {
	names := []string{}
	for _, column := range e.columns {
		for _, category := range e.retained(column) {
			names = append(names, fmt.Sprintf("%s_%s", column, category))
		}
	}
	return names
}

// encode builds the indicator series for the frame. A value never seen at fit
// time is an UnknownCategoryError.
func (e *oneHotEncoder) encode(f *Frame) ([]*Series, error) {
	out := []*Series{}
	for _, column := range e.columns {
		col := f.Column(column)
		if col == nil {
			return nil, columnNotFound(column)
		}
		vocab := map[string]bool{}
		for _, category := range e.categories[column] {
			vocab[category] = true
		}
		retained := e.retained(column)
		indicators := make([][]float64, len(retained))
		for k := range indicators {
			indicators[k] = make([]float64, col.Len())
		}
		for i := 0; i < col.Len(); i++ {
			v := col.CellString(i)
			if !vocab[v] {
				return nil, &UnknownCategoryError{Column: column, Value: v}
			}
			for k, category := range retained {
				if v == category {
					indicators[k][i] = 1
				}
			}
		}
		for k, category := range retained {
			out = append(out, NewFloatSeries(fmt.Sprintf("%s_%s", column, category), indicators[k]))
		}
	}
	return out, nil
}
