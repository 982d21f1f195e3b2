package owned

// noCopy makes go vet flag value copies of the struct embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns zero or one contiguous array of T.
// It tracks no logical size; Len reports the allocated slot count.
type Buffer[T any] struct {
	_     noCopy
	slots []T
}

// New returns a Buffer holding n zero-valued slots.
// For n <= 0 the buffer holds no allocation.
func New[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	if n > 0 {
		b.slots = make([]T, n)
	}
	return b
}

// Adopt takes ownership of s without copying. The caller must not keep
// using s afterwards.
func Adopt[T any](s []T) *Buffer[T] {
	if len(s) == 0 {
		return &Buffer[T]{}
	}
	return &Buffer[T]{slots: s}
}

// Allocated reports whether the buffer currently owns an array.
func (b *Buffer[T]) Allocated() bool {
	return b.slots != nil
}

// Len returns the number of allocated slots.
func (b *Buffer[T]) Len() int {
	return len(b.slots)
}

// Slice returns the owned array. The view is only valid while b keeps
// ownership.
func (b *Buffer[T]) Slice() []T {
	return b.slots
}

// Get returns the element at i.
func (b *Buffer[T]) Get(i int) T {
	return b.slots[i]
}

// Set stores v at i.
func (b *Buffer[T]) Set(i int, v T) {
	b.slots[i] = v
}

// Ref returns a pointer to slot i.
func (b *Buffer[T]) Ref(i int) *T {
	return &b.slots[i]
}

// Release relinquishes ownership and returns the array. b becomes empty.
func (b *Buffer[T]) Release() []T {
	s := b.slots
	b.slots = nil
	return s
}

// Move transfers ownership to a new Buffer and leaves b empty.
func (b *Buffer[T]) Move() *Buffer[T] {
	return &Buffer[T]{slots: b.Release()}
}

// MoveFrom frees the array b owns, then takes ownership of src's array.
// src becomes empty. Moving a buffer into itself does nothing.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Free()
	b.slots = src.Release()
}

// Swap exchanges the arrays owned by b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Free drops the owned array. Freeing an empty buffer is a no-op.
func (b *Buffer[T]) Free() {
	b.slots = nil
}
