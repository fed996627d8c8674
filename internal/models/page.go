package models

// Page is one batch of a cursor-paginated collection.
//
// NextCursor is opaque; an empty string means the source returned no cursor.
type Page[T any] struct {
	Items      []T
	NextCursor string
	HasMore    bool
}

// EmptyPage returns the explicit empty page: no items, no cursor, no more data.
func EmptyPage[T any]() Page[T] {
	return Page[T]{Items: []T{}}
}

// Dedup removes repeated ids keeping the first occurrence. The input slice is not modified.
func Dedup[T Identifiable](items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		id := it.EntityID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, it)
	}
	return out
}
