// Package container provides generic single-value containers.
//
// Go generics are invariant: a Box[Siamese] is never assignable to a
// Box[Cat], no matter how the parameter is used. The directionality that
// variance annotations express elsewhere is expressed here at the use
// site instead: code that only reads accepts a Source, code that only
// writes accepts a Sink, and callers wrap a Box in whichever view the
// consumer needs.
package container

// Source is the read-only view of a container.
type Source[T any] interface {
	// Get removes and returns the contained value. ok=false if empty.
	Get() (T, bool)
}

// Sink is the write-only view of a container.
type Sink[T any] interface {
	// Put stores a value, replacing any previous one.
	Put(v T)
}

// Box holds at most one value of type T.
//
// Box is not safe for concurrent use; it exists to carry a value, not to
// coordinate goroutines.
type Box[T any] struct {
	item T
	full bool
}

// NewBox creates an empty Box.
func NewBox[T any]() *Box[T] {
	return &Box[T]{}
}

// Filled creates a Box already holding v.
func Filled[T any](v T) *Box[T] {
	return &Box[T]{item: v, full: true}
}

// Put stores a value, replacing any previous one.
func (b *Box[T]) Put(v T) {
	b.item = v
	b.full = true
}

// Get removes and returns the contained value. ok=false if empty.
func (b *Box[T]) Get() (T, bool) {
	if !b.full {
		var zero T
		return zero, false
	}
	v := b.item
	var zero T
	b.item = zero
	b.full = false
	return v, true
}

// Full reports whether the box currently holds a value.
func (b *Box[T]) Full() bool {
	return b.full
}

// Lazy defers construction of its value until the first Get.
//
// The constructor runs at most once; its result (value or error) is
// memoized for subsequent calls.
type Lazy[T any] struct {
	construct func() (T, error)
	value     T
	err       error
	done      bool
}

// NewLazy creates a Lazy container around the constructor.
func NewLazy[T any](construct func() (T, error)) *Lazy[T] {
	return &Lazy[T]{construct: construct}
}

// Get returns the constructed value, running the constructor on first use.
func (l *Lazy[T]) Get() (T, error) {
	if !l.done {
		l.value, l.err = l.construct()
		l.done = true
		l.construct = nil
	}
	return l.value, l.err
}
