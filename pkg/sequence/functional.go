package sequence

import (
	"iter"
	"slices"
)

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator from a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Collect exhausts the iterator and returns a slice of all elements.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Sort returns a new Iterator with elements stably sorted by cmp.
// Example: it.Sort(func(a, b Number) int { return a.Compare(b) })
func (i *Iterator[T]) Sort(cmp func(a, b T) int) *Iterator[T] {
	data := i.Collect()
	slices.SortStableFunc(data, cmp)
	return From(data)
}

// Reduce reduces the iterator to a single value using the reducer function and initial value.
func (i *Iterator[T]) Reduce(init T, reducer func(T, T) T) T {
	acc := init
	i.seq(func(v T) bool {
		acc = reducer(acc, v)
		return true
	})
	return acc
}

// Count returns the number of elements in the iterator.
func (i *Iterator[T]) Count() int {
	count := 0
	i.seq(func(_ T) bool {
		count++
		return true
	})
	return count
}

// FilterMap returns an iterator yielding fn(v) for every element where fn reports true.
func FilterMap[T any, R any](it *Iterator[T], fn func(T) (R, bool)) *Iterator[R] {
	return &Iterator[R]{
		seq: func(yield func(R) bool) {
			it.seq(func(v T) bool {
				if r, ok := fn(v); ok {
					return yield(r)
				}
				return true
			})
		},
	}
}

// Distinct returns the distinct keys produced by keyFn, in order of first appearance.
func Distinct[T any, K comparable](it *Iterator[T], keyFn func(T) K) []K {
	seen := make(map[K]struct{})
	var out []K
	it.seq(func(v T) bool {
		k := keyFn(v)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
		return true
	})
	return out
}

// GroupBy groups elements by a key function, returning a map from key to slice of T.
func GroupBy[T any, K comparable](it *Iterator[T], keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	it.seq(func(v T) bool {
		k := keyFn(v)
		groups[k] = append(groups[k], v)
		return true
	})
	return groups
}
