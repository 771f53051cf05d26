package table

import (
	"fmt"
	"strings"
)

// NotFoundError reports a missing workbook or worksheet in the dataset store.
type NotFoundError struct {
	Group string
	Sheet string
}

func (e *NotFoundError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("workbook %q not found", e.Group)
	}
	return fmt.Sprintf("sheet %q not found in workbook %q", e.Sheet, e.Group)
}

// SchemaError reports an unexpected column layout in a table.
type SchemaError struct {
	Sheet   string
	Missing []string
	Columns []string
}

func (e *SchemaError) Error() string {
	where := ""
	if e.Sheet != "" {
		where = fmt.Sprintf(" in sheet %q", e.Sheet)
	}
	return fmt.Sprintf("missing column(s) %s%s, have [%s]",
		strings.Join(e.Missing, ", "), where, strings.Join(e.Columns, ", "))
}
