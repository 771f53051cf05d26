// Package manager holds the scenario edit operations: each manager is a
// single parameterized mutation of one dataset table, validated at
// construction where the parameters allow it and at apply time otherwise.
// Managers are applied sequentially; they are not safe for concurrent use
// against the same dataset.
package manager

import "github.com/expanse-model/expanse/dataset/pkg/table"

// Manager applies one edit to the dataset. Apply reads the target table,
// rewrites the matched rows and persists the result; a predicate matching
// zero rows is a SelectionError and nothing is written.
type Manager interface {
	Name() string
	Apply() error
}

// setMatching writes value into column for every row satisfying conds,
// failing with a SelectionError naming target and keys when nothing matches.
func setMatching(tbl *table.Table, target string, keys map[string]string, conds []table.Condition, column string, value float64) error {
	rows, err := tbl.Where(conds...)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return &SelectionError{Target: target, Keys: keys}
	}
	for _, r := range rows {
		if err := tbl.SetFloat(r, column, value); err != nil {
			return err
		}
	}
	return nil
}
