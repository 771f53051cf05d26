package manager

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports a malformed manager parameter. It is returned by
// constructors, before any dataset I/O.
type ValidationError struct {
	Manager string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s parameters: %s", e.Manager, e.Reason)
}

// SelectionError reports a selection predicate that matched zero rows. A
// manager that cannot find its target rows fails instead of silently leaving
// the dataset untouched.
type SelectionError struct {
	Target string
	Keys   map[string]string
}

func (e *SelectionError) Error() string {
	pairs := make([]string, 0, len(e.Keys))
	for k, v := range e.Keys {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("no rows matched in %s for %s", e.Target, strings.Join(pairs, " "))
}
