// Package services holds the domain logic shared by the HTTP controllers:
// free-text filtering, derived metrics, the submission workflow and the
// scheduled relance sweep.
package services

import "strings"

// Searchable is implemented by every catalog record; it declares the values
// the free-text filter matches against.
type Searchable interface {
	SearchFields() []string
}

// Filter retains the records for which at least one searchable field
// contains the query as a case-insensitive substring. An empty query
// returns the collection unchanged; order is preserved, so filtering an
// already-filtered result with the same query is a no-op.
func Filter[T Searchable](items []T, query string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range item.SearchFields() {
			if strings.Contains(strings.ToLower(field), query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
