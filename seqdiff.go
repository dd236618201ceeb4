// Package seqdiff compares two sequences position by position and reports,
// for every position, whether the element was kept, changed, removed, or
// added.
//
// Unlike a classic diff, no realignment takes place: element i of the left
// sequence is only ever compared to element i of the right sequence. An
// insertion therefore shifts all following positions into Change instead of
// being recognized as an Add that keeps later elements aligned. In exchange
// the comparison is a single cheap pass over both inputs with no allocation
// and no lookahead, which is often all that's needed, e.g. to update a list
// of display slots in place.
//
// The comparison is lazy: it's driven entirely by the consumer of the
// returned sequence and stops as soon as the consumer stops.
package seqdiff

import (
	"iter"
	"slices"
)

// Op describes the comparison outcome for a single position.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Keep   Op = iota // Both sequences have this element and the elements are equal
	Change           // Both sequences have an element at this position, but they differ
	Remove           // Only the left sequence has an element at this position
	Add              // Only the right sequence has an element at this position
)

// Edit describes the comparison outcome for a single position.
//
// Elem carries the right-hand element for Change and Add edits and is the
// zero value for Keep and Remove edits: the edit sequence describes what to
// do to the left sequence to arrive at the right one, so elements of the
// left sequence never need to be repeated.
type Edit[T any] struct {
	Op   Op
	Elem T
}

// CompareFunc compares x and y position by position using eq for equality
// and returns one edit per position up to the length of the longer sequence.
//
// The equality relation is heterogeneous: eq answers whether a left-hand
// element equals a right-hand element, so the two sequences may carry
// different element types.
//
// The returned sequence is lazy and single-use: it consumes x and y while it
// is iterated and must not be iterated a second time. Both inputs are
// advanced exactly once per edit, never further.
func CompareFunc[T, U any](x iter.Seq[T], y iter.Seq[U], eq func(T, U) bool) iter.Seq[Edit[U]] {
	return func(yield func(Edit[U]) bool) {
		nextX, stopX := iter.Pull(x)
		defer stopX()
		nextY, stopY := iter.Pull(y)
		defer stopY()

		for {
			l, lok := nextX()
			r, rok := nextY()

			var edit Edit[U]
			switch {
			case !lok && !rok:
				return
			case !lok:
				edit = Edit[U]{Op: Add, Elem: r}
			case !rok:
				edit = Edit[U]{Op: Remove}
			case eq(l, r):
				edit = Edit[U]{Op: Keep}
			default:
				edit = Edit[U]{Op: Change, Elem: r}
			}
			if !yield(edit) {
				return
			}
		}
	}
}

// Compare compares x and y position by position using == for equality. See
// [CompareFunc] for the comparison semantics.
func Compare[T comparable](x, y iter.Seq[T]) iter.Seq[Edit[T]] {
	return CompareFunc(x, y, func(a, b T) bool { return a == b })
}

// Slices compares two slices position by position using == for equality.
func Slices[T comparable](x, y []T) iter.Seq[Edit[T]] {
	return Compare(slices.Values(x), slices.Values(y))
}

// SlicesFunc compares two slices position by position using eq for equality.
func SlicesFunc[T, U any](x []T, y []U, eq func(T, U) bool) iter.Seq[Edit[U]] {
	return CompareFunc(slices.Values(x), slices.Values(y), eq)
}
