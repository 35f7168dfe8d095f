package anyiter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/anyiter"
)

// The zero value of a handle carries no producer; using one is a defect in the
// calling code and has to surface immediately, not as a silently empty iterator.

func TestAnyIterator_zeroValueMisuse_PanicSent(t *testing.T) {
	t.Parallel()

	defer func() {
		require.Equal(t,
			"anyiter: use of zero AnyIterator; construct it with From, FromFunc or FromChan",
			recover())
	}()

	var itr anyiter.AnyIterator[int]
	_, _ = itr.Next()
}

func TestBoxedIterator_zeroValueMisuse_PanicSent(t *testing.T) {
	t.Parallel()

	defer func() {
		require.Equal(t,
			"anyiter: use of zero BoxedIterator; construct it with Boxed or BoxedFromFunc",
			recover())
	}()

	var itr anyiter.BoxedIterator[int]
	_, _ = itr.Next()
}

func TestAnySequence_zeroValueMisuse_PanicSent(t *testing.T) {
	t.Parallel()

	defer func() {
		require.Equal(t,
			"anyiter: use of zero AnySequence; construct it with FromIterable, FromFactory, FromSeq or Slice",
			recover())
	}()

	var seq anyiter.AnySequence[int]
	_ = seq.Iterate()
}

func TestBoxedSequence_zeroValueMisuse_PanicSent(t *testing.T) {
	t.Parallel()

	defer func() {
		require.Equal(t,
			"anyiter: use of zero BoxedSequence; construct it with BoxedFromIterable or BoxedFromFactory",
			recover())
	}()

	var seq anyiter.BoxedSequence[int]
	_ = seq.Iterate()
}
