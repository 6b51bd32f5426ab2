package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error collects field-level validation failures. Fields maps a JSON field
// name to a human-readable message; handlers return it as the details of a
// 400 response.
type Error struct {
	Fields map[string]string
}

// Error joins the field messages, ordered by field name so the text is
// stable across calls.
func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
