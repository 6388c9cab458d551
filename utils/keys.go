package utils

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}

// FieldNames returns the union of the keys of every document, sorted.
func FieldNames[M ~map[string]T, T any](docs []M) []string {
	seen := map[string]struct{}{}
	for _, doc := range docs {
		for k := range doc {
			seen[k] = struct{}{}
		}
	}
	return SortedKeys(seen)
}
