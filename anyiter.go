// Package anyiter provides type-erased iterators and iterables.
//
// # Summary
//
// An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// Most commonly, iterators hide whether the data comes from a slice, a channel, a storage cursor, or elsewhere.
// The missing piece is usually not the iteration itself but the type of the producer:
// a consumer that only cares about the element type still ends up naming the concrete cursor type in its signatures.
// This package closes that gap with erased handle types that are parameterised by the element type alone,
// constructible from any concrete producer, and uniform to store, pass around, and compose.
//
// Two erasure strategies are provided side by side.
// AnyIterator and AnySequence capture the producer inside a closure held in a plain field;
// one concrete type, no hierarchy, one indirection through the stored callable per pull.
// BoxedIterator and BoxedSequence reach the same contract through a sealed box hierarchy
// with a non-generic marker at the top, the technique standard library internals tend to use.
// Prefer the closure pair for new code; the boxed pair trades a larger surface
// for the ability to dispatch through a common supertype.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Type_erasure
package anyiter

// StepFunc is the universal pull primitive:
// calling it either returns the next element of a traversal,
// or reports with false that the traversal is exhausted.
// It has the same shape as the next function returned by iter.Pull,
// and the two can be used interchangeably.
type StepFunc[V any] func() (V, bool)

// Iterator is the pull protocol this package erases over.
// Any concrete cursor type with a Next method qualifies as a producer.
type Iterator[V any] interface {
	// Next returns the next element of the traversal,
	// or the zero value of V and false once the traversal is exhausted.
	// Next mutates the cursor position, so an Iterator value represents a single cursor.
	Next() (V, bool)
}

// Iterable represents a source that can be traversed any number of times.
type Iterable[V any] interface {
	// Iterate returns a fresh Iterator over the source.
	// Cursors returned by separate Iterate calls must not share state.
	Iterate() Iterator[V]
}

// IterableFunc lets a bare iterator factory function act as an Iterable.
type IterableFunc[V any] func() Iterator[V]

// Iterate implements the Iterable interface.
func (fn IterableFunc[V]) Iterate() Iterator[V] { return fn() }
