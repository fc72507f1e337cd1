package form

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Errors maps field names to their current error message. Absence of a key
// means the field has no recorded error.
type Errors map[string]string

// Error implements the error interface so a failed validation pass can be
// returned as a single error value.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Get returns the message for a field, or "" when the field has none.
func (e Errors) Get(field string) string {
	return e[field]
}

// Has reports whether the field has a recorded error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the errored field names in sorted order.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// IsEmpty reports whether no field has an error.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}
