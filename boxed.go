package anyiter

// The boxed rendition of erasure. Instead of capturing the producer in a
// closure, the producer is boxed behind a small sealed hierarchy:
//
//	erasedBox                     non-generic marker, the common supertype
//	├── iterBoxBase[V]            element-typed iterator contract
//	│   ├── iterBox[V]            boxes a native Iterator
//	│   └── funcBox[V]            boxes a StepFunc
//	└── seqBoxBase[V]             element-typed iterable contract
//	    └── seqBox[V]             boxes a native Iterable
//
// The unexported marker method seals the hierarchy at compile time: no type
// outside this package can pose as a box, so the base cannot be meaningfully
// instantiated on its own. The remaining hole is the zero value of the handle
// types, which is rejected loudly on first use.

// erasedBox is the non-generic marker shared by every element-typed box.
// It exists so a sequence box can hand back the iterator box it produced
// without naming the element type; never useful on its own.
type erasedBox interface {
	sealedBox()
}

// iterBoxBase is the contract an iterator box fulfils for a given element type.
type iterBoxBase[V any] interface {
	erasedBox
	next() (V, bool)
}

// iterBox boxes a concrete pull iterator and forwards next to it.
type iterBox[V any] struct {
	base Iterator[V]
}

func (*iterBox[V]) sealedBox() {}

func (b *iterBox[V]) next() (V, bool) { return b.base.Next() }

// funcBox boxes a step function.
type funcBox[V any] struct {
	step StepFunc[V]
}

func (*funcBox[V]) sealedBox() {}

func (b *funcBox[V]) next() (V, bool) { return b.step() }

// BoxedIterator is the boxing rendition of AnyIterator.
// Same external contract; dispatch happens through the box hierarchy instead of
// a captured closure, which keeps the kind of producer inspectable inside the
// package at the cost of two extra types.
type BoxedIterator[V any] struct {
	box iterBoxBase[V]
}

// Boxed erases a concrete pull iterator behind an iterator box.
func Boxed[V any](it Iterator[V]) *BoxedIterator[V] {
	return &BoxedIterator[V]{box: &iterBox[V]{base: it}}
}

// BoxedFromFunc erases a bare step function behind an iterator box.
func BoxedFromFunc[V any](step StepFunc[V]) *BoxedIterator[V] {
	return &BoxedIterator[V]{box: &funcBox[V]{step: step}}
}

// Next implements the Iterator interface by dispatching to the held box.
func (i *BoxedIterator[V]) Next() (V, bool) {
	if i.box == nil {
		panic("anyiter: use of zero BoxedIterator; construct it with Boxed or BoxedFromFunc")
	}
	return i.box.next()
}

// seqBoxBase is the contract an iterable box fulfils for a given element type.
// makeIterator returns the non-generic marker rather than iterBoxBase;
// the handle narrows it back at the boundary.
type seqBoxBase[V any] interface {
	erasedBox
	makeIterator() erasedBox
}

// seqBox boxes a concrete iterable source.
type seqBox[V any] struct {
	src Iterable[V]
}

func (*seqBox[V]) sealedBox() {}

func (b *seqBox[V]) makeIterator() erasedBox {
	return &iterBox[V]{base: b.src.Iterate()}
}

// BoxedSequence is the boxing rendition of AnySequence.
type BoxedSequence[V any] struct {
	box seqBoxBase[V]
}

// BoxedFromIterable erases a concrete iterable source behind a sequence box.
func BoxedFromIterable[V any](src Iterable[V]) *BoxedSequence[V] {
	return &BoxedSequence[V]{box: &seqBox[V]{src: src}}
}

// BoxedFromFactory erases an iterator factory closure behind a sequence box.
// The factory is adapted into an Iterable whose Iterate just invokes it,
// then handled like any other iterable source.
func BoxedFromFactory[V any](factory func() Iterator[V]) *BoxedSequence[V] {
	return BoxedFromIterable[V](IterableFunc[V](factory))
}

// Iterate returns a fresh erased cursor over the boxed sequence.
func (s *BoxedSequence[V]) Iterate() *BoxedIterator[V] {
	if s.box == nil {
		panic("anyiter: use of zero BoxedSequence; construct it with BoxedFromIterable or BoxedFromFactory")
	}
	// The sequence box speaks in the marker type, so the element-typed contract
	// has to be recovered here. Every box the package can produce satisfies it;
	// a failure is a defect in the hierarchy, not a runtime condition.
	box, ok := s.box.makeIterator().(iterBoxBase[V])
	if !ok {
		panic("anyiter: sequence box produced a foreign iterator box")
	}
	return &BoxedIterator[V]{box: box}
}
