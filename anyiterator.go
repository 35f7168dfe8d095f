package anyiter

// AnyIterator is a type-erased iterator: it exposes Next and hides everything
// about the producer behind a captured step function. It is the closure-capture
// rendition of erasure; one concrete type, no box hierarchy, the captured
// callable owns the mutable cursor state.
//
// An AnyIterator represents exactly one cursor. It is not safe for concurrent
// use without external synchronisation; see WithConcurrentAccess.
type AnyIterator[V any] struct {
	step StepFunc[V]
}

// From erases a concrete pull iterator.
// The iterator is captured by the step closure, which from then on owns its cursor state.
//
// Every iterator constructed by this package keeps returning (zero value, false)
// after its first exhaustion; an iterator wrapped with From inherits whatever
// post-exhaustion behaviour the wrapped producer has.
func From[V any](it Iterator[V]) *AnyIterator[V] {
	return &AnyIterator[V]{step: it.Next}
}

// FromFunc erases a bare step function, storing it verbatim.
// The closure is retained for the lifetime of the returned handle.
func FromFunc[V any](step StepFunc[V]) *AnyIterator[V] {
	return &AnyIterator[V]{step: step}
}

// FromChan erases a channel drain.
// The traversal is exhausted once the channel is closed and emptied.
// A channel can only be drained once, which is why this is an iterator
// constructor and not a sequence constructor.
func FromChan[V any](ch <-chan V) *AnyIterator[V] {
	return FromFunc(func() (V, bool) {
		v, ok := <-ch
		return v, ok
	})
}

// Next implements the Iterator interface by invoking the captured step function.
func (i *AnyIterator[V]) Next() (V, bool) {
	if i.step == nil {
		panic("anyiter: use of zero AnyIterator; construct it with From, FromFunc or FromChan")
	}
	return i.step()
}
