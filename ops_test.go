package anyiter_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/anyiter"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{42, 4, 2}, anyiter.Collect[int](anyiter.Of(42, 4, 2).Iterate()))
	require.Nil(t, anyiter.Collect[int](anyiter.Empty[int]().Iterate()))
}

func TestCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, anyiter.Count[int](anyiter.Of(1, 2, 3).Iterate()))
	require.Equal(t, 0, anyiter.Count[int](anyiter.Empty[int]().Iterate()))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	v, found := anyiter.First[int](anyiter.Of(42, 4, 2).Iterate())
	require.True(t, found)
	require.Equal(t, 42, v)

	_, found = anyiter.First[int](anyiter.Empty[int]().Iterate())
	require.False(t, found)
}

func TestLast(t *testing.T) {
	t.Parallel()

	v, found := anyiter.Last[int](anyiter.Of(42, 4, 2).Iterate())
	require.True(t, found)
	require.Equal(t, 2, v)

	_, found = anyiter.Last[int](anyiter.Empty[int]().Iterate())
	require.False(t, found)
}

func TestReduce(t *testing.T) {
	t.Parallel()

	sum := anyiter.Reduce(anyiter.Of(1, 2, 3).Iterate(), 0, func(acc, n int) int {
		return acc + n
	})
	require.Equal(t, 6, sum)
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("transforms every element", func(t *testing.T) {
		itr := anyiter.Map(anyiter.Of(1, 2, 3).Iterate(), func(n int) int {
			return n * 10
		})
		require.Equal(t, []int{10, 20, 30}, anyiter.Collect[int](itr))
	})

	t.Run("can change the element type", func(t *testing.T) {
		itr := anyiter.Map(anyiter.Of(1, 2, 3).Iterate(), func(n int) bool {
			return n%2 == 0
		})
		require.Equal(t, []bool{false, true, false}, anyiter.Collect[bool](itr))
	})

	t.Run("is lazy", func(t *testing.T) {
		stub := &stubIterator{values: []int{1, 2, 3}}
		itr := anyiter.Map(stub, func(n int) int { return n })
		require.Equal(t, 0, stub.NextCalls)
		_, _ = itr.Next()
		require.Equal(t, 1, stub.NextCalls)
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("keeps only the matching elements", func(t *testing.T) {
		itr := anyiter.Filter(anyiter.Of(1, 2, 3, 4, 5).Iterate(), func(n int) bool {
			return n%2 == 1
		})
		require.Equal(t, []int{1, 3, 5}, anyiter.Collect[int](itr))
	})

	t.Run("a fully rejected source is exhausted on the first call", func(t *testing.T) {
		itr := anyiter.Filter(anyiter.Of(2, 4, 6).Iterate(), func(n int) bool {
			return n%2 == 1
		})
		_, ok := itr.Next()
		require.False(t, ok)
	})
}

func TestTake(t *testing.T) {
	t.Parallel()

	t.Run("caps the traversal at n elements", func(t *testing.T) {
		src := anyiter.Of(1, 2, 3, 4, 5).Iterate()
		require.Equal(t, []int{1, 2}, anyiter.Collect[int](anyiter.Take[int](src, 2)))
		// the remainder of the source is untouched
		require.Equal(t, []int{3, 4, 5}, anyiter.Collect[int](src))
	})

	t.Run("a shorter source just ends earlier", func(t *testing.T) {
		itr := anyiter.Take[int](anyiter.Of(1).Iterate(), 42)
		require.Equal(t, []int{1}, anyiter.Collect[int](itr))
	})
}

func TestForEach(t *testing.T) {
	t.Parallel()

	t.Run("visits every element", func(t *testing.T) {
		var visited []int
		err := anyiter.ForEach(anyiter.Of(1, 2, 3).Iterate(), func(n int) error {
			visited = append(visited, n)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, visited)
	})

	t.Run("an error from the block cancels the traversal and is returned", func(t *testing.T) {
		boom := errors.New("boom")
		var visited int
		err := anyiter.ForEach(anyiter.Of(1, 2, 3).Iterate(), func(int) error {
			visited++
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, visited)
	})

	t.Run("Break cancels the traversal without an error", func(t *testing.T) {
		var visited int
		err := anyiter.ForEach(anyiter.Of(1, 2, 3).Iterate(), func(int) error {
			visited++
			return anyiter.Break
		})
		require.NoError(t, err)
		require.Equal(t, 1, visited)
	})
}

func TestWithConcurrentAccess(t *testing.T) {
	t.Parallel()

	var values []int
	for i := 0; i < 100; i++ {
		values = append(values, i)
	}
	itr := anyiter.WithConcurrentAccess[int](anyiter.Slice(values).Iterate())

	var (
		wg   sync.WaitGroup
		m    sync.Mutex
		seen []int
	)
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v, ok := itr.Next(); ok; v, ok = itr.Next() {
				m.Lock()
				seen = append(seen, v)
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	require.ElementsMatch(t, values, seen)
}
