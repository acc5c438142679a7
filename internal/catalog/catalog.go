// Package catalog provides the AISC W-shape section property table.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// NotFoundError is returned when a shape designation is not in the table.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("shape %q not found, use 'section list' to see available shapes", e.Name)
}

// Get returns the properties of the named W-shape. The lookup is
// case-insensitive ("W8X10" and "w8x10" are the same shape).
func Get(name string) (aisc.SectionProperties, error) {
	p, ok := shapes[strings.ToLower(name)]
	if !ok {
		return aisc.SectionProperties{}, &NotFoundError{Name: name}
	}
	return p, nil
}

// List returns the sorted designations of all available shapes,
// optionally filtered by a series prefix such as "W8" or "W12".
func List(series string) []string {
	prefix := strings.ToLower(series)

	names := make([]string, 0, len(shapes))
	for name := range shapes {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
