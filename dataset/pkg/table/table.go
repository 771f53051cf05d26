package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an in-memory snapshot of one worksheet: an ordered list of column
// headers and the rows beneath them. Cells are kept as the strings the
// workbook layer produced; numeric access goes through Float/SetFloat.
//
// Dimension-column tuples are not required to be unique within a table; row
// selection always returns every matching row.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty table with the given column headers.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// AppendRow adds a row, padding or truncating it to the column count.
func (t *Table) AppendRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	dup := New(t.Columns...)
	dup.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		dup.Rows[i] = append([]string(nil), row...)
	}
	return dup
}

// Equal reports whether two tables have identical columns, row order and
// cell values.
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i, c := range t.Columns {
		if o.Columns[i] != c {
			return false
		}
	}
	for i, row := range t.Rows {
		for j, cell := range row {
			if o.Rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// RenameColumn renames a column header in place.
func (t *Table) RenameColumn(from, to string) error {
	i := t.ColumnIndex(from)
	if i < 0 {
		return &SchemaError{Missing: []string{from}, Columns: t.Columns}
	}
	t.Columns[i] = to
	return nil
}

// Value returns the cell at (row, column).
func (t *Table) Value(row int, column string) (string, error) {
	i := t.ColumnIndex(column)
	if i < 0 {
		return "", &SchemaError{Missing: []string{column}, Columns: t.Columns}
	}
	if row < 0 || row >= len(t.Rows) {
		return "", fmt.Errorf("row %d out of range (%d rows)", row, len(t.Rows))
	}
	return t.Rows[row][i], nil
}

// Set writes the cell at (row, column).
func (t *Table) Set(row int, column, value string) error {
	i := t.ColumnIndex(column)
	if i < 0 {
		return &SchemaError{Missing: []string{column}, Columns: t.Columns}
	}
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row %d out of range (%d rows)", row, len(t.Rows))
	}
	t.Rows[row][i] = value
	return nil
}

// Float parses the cell at (row, column) as a float64.
func (t *Table) Float(row int, column string) (float64, error) {
	s, err := t.Value(row, column)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q in column %q as number: %w", s, column, err)
	}
	return v, nil
}

// SetFloat writes a numeric value to the cell at (row, column).
func (t *Table) SetFloat(row int, column string, v float64) error {
	return t.Set(row, column, FormatFloat(v))
}

// FormatFloat renders a float the way cells are stored.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Condition matches rows by the value of one column.
type Condition struct {
	Column string
	Match  func(value string) bool
}

// Eq matches rows whose column equals value.
func Eq(column, value string) Condition {
	return Condition{Column: column, Match: func(v string) bool { return v == value }}
}

// In matches rows whose column equals any of the given values.
func In(column string, values ...string) Condition {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Condition{Column: column, Match: func(v string) bool {
		_, ok := set[v]
		return ok
	}}
}

// Where returns the indices of rows satisfying every condition. A condition
// on a column the table does not have is a SchemaError.
func (t *Table) Where(conds ...Condition) ([]int, error) {
	cols := make([]int, len(conds))
	for i, c := range conds {
		idx := t.ColumnIndex(c.Column)
		if idx < 0 {
			return nil, &SchemaError{Missing: []string{c.Column}, Columns: t.Columns}
		}
		cols[i] = idx
	}
	var out []int
	for r, row := range t.Rows {
		ok := true
		for i, c := range conds {
			if !c.Match(row[cols[i]]) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}
