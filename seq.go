package anyiter

import "iter"

// Pull adapts a native push sequence into an erased pull iterator.
// The returned iterator is single use: it drains the one pull coroutine it
// started. For a re-iterable view over a push sequence, use FromSeq.
func Pull[V any](seq iter.Seq[V]) *AnyIterator[V] {
	next, stop := iter.Pull(seq)
	return FromFunc(func() (V, bool) {
		v, ok := next()
		if !ok {
			// releases the coroutine; next keeps reporting exhaustion afterwards
			stop()
		}
		return v, ok
	})
}

// ToSeq returns a push view of a pull iterator for use in range statements.
// The view is single use: it advances the given cursor, and ranging over it
// again continues from wherever the previous range stopped.
func ToSeq[V any](it Iterator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
