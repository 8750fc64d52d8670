package history

import (
	"slices"
)

// Current returns the record with the greatest (recordedAt, id) pair, or nil for an
// empty history. The input order does not matter.
func Current(records []*Record) *Record {
	var current *Record
	for _, r := range records {
		if current == nil || r.After(current) {
			current = r
		}
	}
	return current
}

// Chronological returns a copy of records in replay order: ascending recordedAt,
// ascending id for equal timestamps.
func Chronological(records []*Record) []*Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *Record) int {
		switch {
		case b.After(a):
			return -1
		case a.After(b):
			return 1
		default:
			return 0
		}
	})
	return sorted
}
