// Package sorter orders [record.Record] values with a stable top-down merge
// sort.
//
// All functions are pure: the input slice is never modified and the result is
// always a newly allocated slice.
package sorter

import (
	"github.com/macropower/shelf/pkg/record"
)

// Sort returns a copy of items ordered by key. Records that rank equally keep
// their relative input order.
func Sort(items []record.Record, key record.Key) []record.Record {
	return Merge(items, key.Compare)
}

// SortBy returns a copy of items ordered by each [record.Order] in turn. Later
// orders only break ties left by earlier ones. With no orders, items are
// ordered by title.
func SortBy(items []record.Record, orders ...record.Order) []record.Record {
	if len(orders) == 0 {
		return Sort(items, record.KeyTitle)
	}

	return Merge(items, func(a, b record.Record) int {
		for _, o := range orders {
			if c := o.Compare(a, b); c != 0 {
				return c
			}
		}

		return 0
	})
}

// Merge returns a copy of items sorted by cmp using a top-down merge sort.
//
// The sort is stable: when cmp reports two elements as equal, the element
// from the left half is emitted first.
func Merge[E any](items []E, cmp func(a, b E) int) []E {
	if len(items) <= 1 {
		out := make([]E, len(items))
		copy(out, items)

		return out
	}

	mid := len(items) / 2
	left := Merge(items[:mid], cmp)
	right := Merge(items[mid:], cmp)

	return merge(left, right, cmp)
}

func merge[E any](left, right []E, cmp func(a, b E) int) []E {
	out := make([]E, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// Right only wins when strictly smaller.
		if cmp(right[j], left[i]) < 0 {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}

	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
