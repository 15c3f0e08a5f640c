/*
Package seq implements the array operations of script values.

A *Seq is a handle to an owned, resizable buffer. Operations come in two
flavours:

	mutating        Push, Unshift, Pop, Shift, Reverse, Sort
	copy-returning  Concat, Slice, Copy, Map, Filter

Mutating operations change the container behind the handle, so every holder
of the same *Seq observes the change. Copy-returning operations leave their
receiver alone and return a new, independent container.

Callbacks supplied by clients may fail. The first callback error aborts the
operation; it is returned wrapped in a *CallbackError and the container is
left exactly as it was before the call.

A Seq is not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package seq

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'textprim.seq'
func tracer() tracing.Trace {
	return tracing.Select("textprim.seq")
}

// ErrEmptyContainer matches every *EmptyContainerError.
var ErrEmptyContainer = errors.New("seq: empty container")

// EmptyContainerError is returned by operations which need at least one
// element.
type EmptyContainerError struct {
	Op string // operation, e.g. "pop"
}

func (e *EmptyContainerError) Error() string {
	return fmt.Sprintf("seq: %s on empty container", e.Op)
}

// Is matches ErrEmptyContainer.
func (e *EmptyContainerError) Is(target error) bool {
	return target == ErrEmptyContainer
}

// CallbackError wraps an error returned by a client callback.
type CallbackError struct {
	Op    string // operation which invoked the callback
	Index int    // index of the element being processed, -1 if unknown
	Err   error
}

func (e *CallbackError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("seq: %s callback: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("seq: %s callback at index %d: %v", e.Op, e.Index, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// Seq is a sequence container.
//
// A Seq created by
//
//	&Seq[T]{}
//
// is a valid, empty container.
type Seq[T any] struct {
	items []T
}

// New creates a container holding a copy of items.
func New[T any](items ...T) *Seq[T] {
	return &Seq[T]{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (s *Seq[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i. If i is out of range, ok is false.
func (s *Seq[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= len(s.items) {
		return v, false
	}
	return s.items[i], true
}

// Values returns a copy of the elements.
func (s *Seq[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over index/element pairs.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// --- Mutating operations ---------------------------------------------------

// Push appends v at the end.
func (s *Seq[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Unshift inserts v at the front.
func (s *Seq[T]) Unshift(v T) {
	s.items = slices.Insert(s.items, 0, v)
}

// Pop removes and returns the last element.
func (s *Seq[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, &EmptyContainerError{Op: "pop"}
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return v, nil
}

// Shift removes and returns the first element.
func (s *Seq[T]) Shift() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, &EmptyContainerError{Op: "shift"}
	}
	v := s.items[0]
	s.items = slices.Delete(s.items, 0, 1)
	return v, nil
}

// Reverse reverses the order of elements in place.
func (s *Seq[T]) Reverse() {
	slices.Reverse(s.items)
}

// Sort sorts the elements in place. The sort is stable. comp returns a
// negative number if a has to be placed before b, a positive one if after,
// and 0 to keep their relative order.
//
// If comp fails, the container remains unchanged.
func (s *Seq[T]) Sort(comp func(a, b T) (int, error)) error {
	sorted := slices.Clone(s.items)
	var failure error
	slices.SortStableFunc(sorted, func(a, b T) int {
		if failure != nil {
			return 0
		}
		c, err := comp(a, b)
		if err != nil {
			failure = err
			return 0
		}
		return c
	})
	if failure != nil {
		tracer().Debugf("sort aborted: %v", failure)
		return &CallbackError{Op: "sort", Index: -1, Err: failure}
	}
	s.items = sorted
	return nil
}

// --- Copy-returning operations ---------------------------------------------

// Copy returns an independent copy of s.
func (s *Seq[T]) Copy() *Seq[T] {
	return &Seq[T]{items: slices.Clone(s.items)}
}

// Concat returns a new container holding the elements of s followed by
// those of other.
func (s *Seq[T]) Concat(other *Seq[T]) *Seq[T] {
	return &Seq[T]{items: slices.Concat(s.items, other.items)}
}

// Slice returns a new container holding the elements [begin, end) of s.
// Negative indices count from the end; indices are clamped to [0, Len()].
func (s *Seq[T]) Slice(begin, end int) *Seq[T] {
	n := len(s.items)
	begin, end = clamp(begin, n), clamp(end, n)
	if begin >= end {
		return &Seq[T]{}
	}
	return &Seq[T]{items: slices.Clone(s.items[begin:end])}
}

func clamp(i, n int) int {
	if i < 0 {
		return max(i+n, 0)
	}
	return min(i, n)
}

// Filter returns a new container with the elements for which pred holds.
func (s *Seq[T]) Filter(pred func(v T, i int) (bool, error)) (*Seq[T], error) {
	var out []T
	for i, v := range s.items {
		keep, err := pred(v, i)
		if err != nil {
			return nil, &CallbackError{Op: "filter", Index: i, Err: err}
		}
		if keep {
			out = append(out, v)
		}
	}
	return &Seq[T]{items: out}, nil
}

// Map returns a new container holding f applied to every element of s.
func Map[T, U any](s *Seq[T], f func(v T, i int) (U, error)) (*Seq[U], error) {
	out := make([]U, len(s.items))
	for i, v := range s.items {
		u, err := f(v, i)
		if err != nil {
			return nil, &CallbackError{Op: "map", Index: i, Err: err}
		}
		out[i] = u
	}
	return &Seq[U]{items: out}, nil
}

// --- Queries ---------------------------------------------------------------

// Reduce folds the elements of s, starting with element 0 as the
// accumulator and calling f for indices 1, 2, …. Reducing an empty container
// is an error; a container of one element reduces to that element.
func Reduce[T any](s *Seq[T], f func(acc, v T, i int) (T, error)) (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, &EmptyContainerError{Op: "reduce"}
	}
	acc := s.items[0]
	for i := 1; i < len(s.items); i++ {
		var err error
		if acc, err = f(acc, s.items[i], i); err != nil {
			return acc, &CallbackError{Op: "reduce", Index: i, Err: err}
		}
	}
	return acc, nil
}

// ReduceFrom folds the elements of s into initial, calling f for indices
// 0, 1, ….
func ReduceFrom[T, A any](s *Seq[T], initial A, f func(acc A, v T, i int) (A, error)) (A, error) {
	acc := initial
	for i, v := range s.items {
		var err error
		if acc, err = f(acc, v, i); err != nil {
			return acc, &CallbackError{Op: "reduce", Index: i, Err: err}
		}
	}
	return acc, nil
}

// Find returns the first element for which pred holds, together with its
// index. If there is none, index is -1.
func (s *Seq[T]) Find(pred func(v T, i int) (bool, error)) (v T, index int, err error) {
	for i, x := range s.items {
		found, perr := pred(x, i)
		if perr != nil {
			return v, -1, &CallbackError{Op: "find", Index: i, Err: perr}
		}
		if found {
			return x, i, nil
		}
	}
	return v, -1, nil
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (s *Seq[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(s.items, f)
}

// Contains reports whether v is an element of s.
func Contains[T comparable](s *Seq[T], v T) bool {
	return slices.Contains(s.items, v)
}

// Join concatenates the strings of s, placing sep between them.
func Join(s *Seq[string], sep string) string {
	return strings.Join(s.items, sep)
}
