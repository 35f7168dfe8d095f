package anyiter

import (
	"errors"
	"sync"
)

// Error is an implementation for the error interface that allows declaring
// exported error values with the const keyword.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Break can be returned from a ForEach block to stop the traversal early
// without reporting an error to the caller.
const Break Error = "anyiter:break"

// Collect consumes the iterator and returns every remaining element as a slice.
func Collect[V any](itr Iterator[V]) []V {
	var vs []V
	for v, ok := itr.Next(); ok; v, ok = itr.Next() {
		vs = append(vs, v)
	}
	return vs
}

// Count consumes the iterator and returns the number of remaining elements.
func Count[V any](itr Iterator[V]) int {
	var total int
	for _, ok := itr.Next(); ok; _, ok = itr.Next() {
		total++
	}
	return total
}

// ForEach calls the block with every remaining element of the iterator.
// Returning Break from the block stops the traversal without an error,
// any other error stops it and is returned as is.
func ForEach[V any](itr Iterator[V], blk func(V) error) error {
	for v, ok := itr.Next(); ok; v, ok = itr.Next() {
		if err := blk(v); err != nil {
			if errors.Is(err, Break) {
				return nil
			}
			return err
		}
	}
	return nil
}

// First consumes at most one element and reports whether the iterator had one.
func First[V any](itr Iterator[V]) (V, bool) {
	return itr.Next()
}

// Last consumes the iterator and returns its final element,
// or reports false when the iterator was already exhausted.
func Last[V any](itr Iterator[V]) (V, bool) {
	var (
		last  V
		found bool
	)
	for v, ok := itr.Next(); ok; v, ok = itr.Next() {
		last = v
		found = true
	}
	return last, found
}

// Reduce folds the remaining elements of the iterator into a single value.
func Reduce[R, V any](itr Iterator[V], initial R, blk func(R, V) R) R {
	v := initial
	for c, ok := itr.Next(); ok; c, ok = itr.Next() {
		v = blk(v, c)
	}
	return v
}

// Map lazily transforms the elements of an iterator.
// This is useful when the input value must be altered, or its type changed
// altogether, without exposing how to the consumer of the result.
func Map[To, V any](itr Iterator[V], transform func(V) To) *AnyIterator[To] {
	return FromFunc(func() (To, bool) {
		v, ok := itr.Next()
		if !ok {
			var zero To
			return zero, false
		}
		return transform(v), true
	})
}

// Filter lazily drops the elements the keep function rejects.
func Filter[V any](itr Iterator[V], keep func(V) bool) *AnyIterator[V] {
	return FromFunc(func() (V, bool) {
		for {
			v, ok := itr.Next()
			if !ok {
				return v, false
			}
			if keep(v) {
				return v, true
			}
		}
	})
}

// Take lazily caps the iterator at n elements.
func Take[V any](itr Iterator[V], n int) *AnyIterator[V] {
	remaining := n
	return FromFunc(func() (V, bool) {
		if remaining <= 0 {
			var zero V
			return zero, false
		}
		remaining--
		return itr.Next()
	})
}

// WithConcurrentAccess wraps an iterator so that it is safe to pull from
// concurrent goroutines. Each Next call holds the lock for the duration of
// one pull; the order in which competing goroutines receive elements is
// whatever the scheduler decides.
func WithConcurrentAccess[V any](itr Iterator[V]) *AnyIterator[V] {
	var m sync.Mutex
	return FromFunc(func() (V, bool) {
		m.Lock()
		defer m.Unlock()
		return itr.Next()
	})
}
