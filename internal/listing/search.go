package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchName reports whether query occurs in name ignoring case. An empty
// query matches every name.
func MatchName(name, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(name), fold.String(query))
}

// Filter keeps the items accepted by keep, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
