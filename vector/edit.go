package vector

import "fmt"

// PushBack appends x, growing the storage when it is full.
func (v *Vector[T]) PushBack(x T) {
	if v.size == v.capacity {
		v.regrow(v.cfg.nextCapacity(v.capacity, v.size+1), -1)
	}
	v.data.Set(v.size, x)
	v.size++
}

// PushBackFrom appends *src and resets *src to the zero value.
func (v *Vector[T]) PushBackFrom(src *T) {
	v.PushBack(*src)
	var zero T
	*src = zero
}

// PopBack removes the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
}

// Insert places x immediately before pos and returns a cursor to it.
// pos must belong to v and lie in [Begin, End].
func (v *Vector[T]) Insert(pos Cursor[T], x T) Cursor[T] {
	return Cursor[T]{v: v, i: v.insertAt(v.ownIndex(pos, v.size), x)}
}

// InsertFrom is Insert with *src relocated into the new slot and reset to
// the zero value.
func (v *Vector[T]) InsertFrom(pos Cursor[T], src *T) Cursor[T] {
	c := v.Insert(pos, *src)
	var zero T
	*src = zero
	return c
}

// InsertAt places x at index i, shifting later elements toward the end.
// i must lie in [0, Size].
func (v *Vector[T]) InsertAt(i int, x T) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: insert index %d outside [0, %d]", i, v.size))
	}
	v.insertAt(i, x)
}

func (v *Vector[T]) insertAt(i int, x T) int {
	if v.size == v.capacity {
		v.regrow(v.cfg.nextCapacity(v.capacity, v.size+1), i)
	} else {
		s := v.data.Slice()
		copy(s[i+1:v.size+1], s[i:v.size])
	}
	v.data.Set(i, x)
	v.size++
	return i
}

// Erase removes the element at pos and returns a cursor to the element that
// took its place, or End if the last element was removed.
func (v *Vector[T]) Erase(pos Cursor[T]) Cursor[T] {
	i := v.ownIndex(pos, v.size-1)
	v.eraseAt(i)
	return Cursor[T]{v: v, i: i}
}

// EraseAt removes element i, shifting later elements toward the front.
// i must lie in [0, Size).
func (v *Vector[T]) EraseAt(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: erase index %d outside [0, %d)", i, v.size))
	}
	v.eraseAt(i)
}

func (v *Vector[T]) eraseAt(i int) {
	s := v.data.Slice()
	copy(s[i:v.size-1], s[i+1:v.size])
	v.size--
}

// ownIndex validates that c points into v at an index in [0, last].
func (v *Vector[T]) ownIndex(c Cursor[T], last int) int {
	if c.v != v {
		panic("vector: cursor belongs to a different vector")
	}
	if c.i < 0 || c.i > last {
		panic(fmt.Sprintf("vector: cursor index %d outside [0, %d]", c.i, last))
	}
	return c.i
}
