package vector

import (
	"fmt"

	"github.com/cwbudde/algo-vector/owned"
)

// Vector is a growable array of T. The zero value is an empty vector using
// the default growth policy.
type Vector[T any] struct {
	size     int
	capacity int
	data     owned.Buffer[T]
	cfg      Config
}

// New returns an empty vector configured by opts. WithCapacity reserves
// storage without changing the size.
func New[T any](opts ...Option) *Vector[T] {
	cfg := ApplyOptions(opts...)
	v := &Vector[T]{cfg: cfg}
	if cfg.InitialCapacity > 0 {
		v.data.MoveFrom(owned.New[T](cfg.InitialCapacity))
		v.capacity = cfg.InitialCapacity
	}
	return v
}

// NewSized returns a vector of n zero values with capacity n.
// Negative n is treated as 0.
func NewSized[T any](n int) *Vector[T] {
	n = max(n, 0)
	v := &Vector[T]{size: n, capacity: n, cfg: DefaultConfig()}
	v.data.MoveFrom(owned.New[T](n))
	return v
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewSized[T](n)
	s := v.Slice()
	for i := range s {
		s[i] = value
	}
	return v
}

// Of returns a vector holding a copy of values, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	v := NewSized[T](len(values))
	copy(v.Slice(), values)
	return v
}

// Clone returns an independent copy of the live elements. The clone's
// capacity equals its size and it inherits v's growth policy. Elements are
// copied by assignment, so pointer-like elements still share their targets.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{size: v.size, capacity: v.size, cfg: v.cfg}
	if v.size > 0 {
		nb := owned.New[T](v.size)
		copy(nb.Slice(), v.Slice())
		c.data.MoveFrom(nb)
	}
	return c
}

// Move transfers v's storage into a new vector without copying elements.
// v is left with size 0, capacity 0 and no allocation.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{size: v.size, capacity: v.capacity, cfg: v.cfg}
	m.data.MoveFrom(&v.data)
	v.size, v.capacity = 0, 0
	return m
}

// CopyFrom replaces v's contents with a copy of src. The copy is built
// before v is touched, so v is unchanged if building it panics.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.data.Free()
}

// MoveFrom releases v's storage and takes over src's. Like Move, src is
// left with size 0, capacity 0 and no allocation.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.data.MoveFrom(&src.data)
	v.size, v.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// Swap exchanges contents with other in O(1). Each vector keeps its own
// growth policy.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Slice returns the live elements. The view shares storage with v and is
// invalidated by any reallocation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice()[:v.size]
}

// Get returns element i without checking it against Size.
// i must be below Size.
func (v *Vector[T]) Get(i int) T {
	return v.data.Get(i)
}

// Set stores x at i without checking it against Size.
func (v *Vector[T]) Set(i int, x T) {
	v.data.Set(i, x)
}

// Ref returns a pointer to element i without checking it against Size.
// The pointer is invalidated by reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return v.data.Ref(i)
}

// At returns element i, or an error wrapping ErrOutOfRange when i is not
// in [0, Size).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.data.Get(i), nil
}

// AtRef is the pointer-returning form of At.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return v.data.Ref(i), nil
}

// Reserve grows the capacity to exactly n when n exceeds it.
// It never shrinks and never changes the size.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.regrow(n, -1)
	}
}

// Resize sets the size to n. Shrinking keeps the capacity and leaves the
// truncated elements in storage. Growing exposes zero values, reallocating
// to max(n, Capacity*GrowthFactor) when n exceeds the capacity.
// Negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	n = max(n, 0)
	switch {
	case n <= v.size:
	case n <= v.capacity:
		clear(v.data.Slice()[v.size:n])
	default:
		v.regrow(v.cfg.nextCapacity(v.capacity, n), -1)
	}
	v.size = n
}

// Clear sets the size to 0 and keeps the storage.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// regrow relocates the live elements into a fresh buffer of newCap slots.
// When gap >= 0 the elements from gap onward land one slot later, leaving
// slot gap free for an insertion.
func (v *Vector[T]) regrow(newCap, gap int) {
	nb := owned.New[T](newCap)
	dst, src := nb.Slice(), v.Slice()
	if gap < 0 {
		copy(dst, src)
	} else {
		copy(dst, src[:gap])
		copy(dst[gap+1:], src[gap:])
	}
	v.data.Swap(nb)
	nb.Free()

	old := v.capacity
	v.capacity = newCap
	if v.cfg.OnGrow != nil {
		v.cfg.OnGrow(old, newCap)
	}
}
