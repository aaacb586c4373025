// Package linq is a small set of query combinators over iter.Seq.
//
// Every combinator is lazy: nothing runs until the sequence is ranged over
// or collected with ToSlice. Combinators compose by nesting calls, e.g.
//
//	evens := linq.ToSlice(linq.Where(linq.From(nums), isEven))
package linq

import (
	"cmp"
	"iter"
	"slices"
)

// Number is the constraint for Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// From adapts a slice.
func From[T any](s []T) iter.Seq[T] { return slices.Values(s) }

// Range yields count integers starting at start.
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	}
}

// Where keeps elements matching pred.
func Where[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Select projects each element.
func Select[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// OrderBy sorts by key, keeping the original order of equal keys. It has to
// buffer the whole input.
func OrderBy[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := slices.Collect(seq)
		slices.SortStableFunc(buf, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	}
}

// OrderByDescending is OrderBy with the comparison reversed.
func OrderByDescending[T any, K cmp.Ordered](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := slices.Collect(seq)
		slices.SortStableFunc(buf, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
		for _, v := range buf {
			if !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n elements.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Skip drops the first n elements.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Distinct drops repeated elements, keeping first occurrences.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Any reports whether some element matches pred. It stops at the first match.
func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether every element matches pred. True for an empty sequence.
func All[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Count consumes seq and returns its length.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// First returns the first element, if any.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Sum adds every element.
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy buckets elements by key. Groups appear in order of each key's
// first occurrence.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) []Group[K, T] {
	var (
		groups []Group[K, T]
		index  = make(map[K]int)
	)
	for v := range seq {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, v)
	}
	return groups
}

// ToSlice collects seq.
func ToSlice[T any](seq iter.Seq[T]) []T { return slices.Collect(seq) }

// Identity is a convenience key function.
func Identity[T any](v T) T { return v }
