package anyiter

import "iter"

// AnySequence is a type-erased iterable: it exposes Iterate and hides everything
// about the source behind a captured make-iterator closure. It is the
// closure-capture rendition of erasure, and the recommended one for new code.
//
// Iterate may be called any number of times; each call yields an independent
// cursor. To uphold that, a sequence never stores a live iterator, only a
// source that is safe to re-traverse or a factory that mints a new producer
// per call.
type AnySequence[V any] struct {
	makeIter func() *AnyIterator[V]
}

// FromIterable erases a concrete iterable source.
// Each Iterate call asks the source for a fresh native iterator and erases it.
func FromIterable[V any](src Iterable[V]) *AnySequence[V] {
	return &AnySequence[V]{makeIter: func() *AnyIterator[V] {
		return From(src.Iterate())
	}}
}

// FromFactory erases an iterator factory closure.
// The factory is invoked once per Iterate call, so every traversal gets its own producer.
func FromFactory[V any](factory func() Iterator[V]) *AnySequence[V] {
	return &AnySequence[V]{makeIter: func() *AnyIterator[V] {
		return From(factory())
	}}
}

// FromSeq erases a native push sequence.
// Each Iterate call starts a fresh pull coroutine over the sequence,
// so cursors from separate calls do not interfere.
func FromSeq[V any](seq iter.Seq[V]) *AnySequence[V] {
	return &AnySequence[V]{makeIter: func() *AnyIterator[V] {
		return Pull(seq)
	}}
}

// Slice returns a sequence over the given slice.
// The slice header is copied per traversal, so cursors are independent by construction.
func Slice[V any](vs []V) *AnySequence[V] {
	return FromFactory[V](func() Iterator[V] {
		return &sliceIter[V]{slice: vs}
	})
}

// Of returns a sequence over the given elements.
func Of[V any](vs ...V) *AnySequence[V] {
	return Slice(vs)
}

// Empty returns a sequence with no elements.
// It helps to achieve the null object pattern when a sequence is logically
// expected but no value is present.
func Empty[V any]() *AnySequence[V] {
	return FromFactory[V](func() Iterator[V] {
		return emptyIter[V]{}
	})
}

// Iterate returns a fresh erased cursor over the sequence.
func (s *AnySequence[V]) Iterate() *AnyIterator[V] {
	if s.makeIter == nil {
		panic("anyiter: use of zero AnySequence; construct it with FromIterable, FromFactory, FromSeq or Slice")
	}
	return s.makeIter()
}

// Seq returns a re-iterable push view of the sequence for use in range statements.
// Each range over the returned Seq starts a fresh traversal.
func (s *AnySequence[V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		itr := s.Iterate()
		for v, ok := itr.Next(); ok; v, ok = itr.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

type sliceIter[V any] struct {
	slice []V
	index int
}

func (i *sliceIter[V]) Next() (V, bool) {
	if len(i.slice) <= i.index {
		var zero V
		return zero, false
	}
	v := i.slice[i.index]
	i.index++
	return v, true
}

type emptyIter[V any] struct{}

func (emptyIter[V]) Next() (V, bool) {
	var zero V
	return zero, false
}
