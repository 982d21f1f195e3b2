package vector

// Cursor is a position in a Vector's live range, or its end.
// A cursor stays bound to its index: edits before it shift which element
// it observes, as with a raw pointer into the storage.
type Cursor[T any] struct {
	v *Vector[T]
	i int
}

// Begin returns a cursor to the first element.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{v: v}
}

// End returns the cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{v: v, i: v.size}
}

// CursorAt returns a cursor to index i. It is not validated until used.
func (v *Vector[T]) CursorAt(i int) Cursor[T] {
	return Cursor[T]{v: v, i: i}
}

// Index returns the cursor's offset from Begin.
func (c Cursor[T]) Index() int {
	return c.i
}

// Valid reports whether the cursor points at a live element.
func (c Cursor[T]) Valid() bool {
	return c.v != nil && c.i >= 0 && c.i < c.v.size
}

// Value returns the element under the cursor. It panics if the cursor is
// not Valid.
func (c Cursor[T]) Value() T {
	return *c.Ref()
}

// Set replaces the element under the cursor.
func (c Cursor[T]) Set(x T) {
	*c.Ref() = x
}

// Ref returns a pointer to the element under the cursor.
func (c Cursor[T]) Ref() *T {
	if !c.Valid() {
		panic("vector: dereference of invalid cursor")
	}
	return c.v.data.Ref(c.i)
}

// Next returns the cursor one position later.
func (c Cursor[T]) Next() Cursor[T] {
	return c.Advance(1)
}

// Prev returns the cursor one position earlier.
func (c Cursor[T]) Prev() Cursor[T] {
	return c.Advance(-1)
}

// Advance returns the cursor n positions later; n may be negative.
func (c Cursor[T]) Advance(n int) Cursor[T] {
	return Cursor[T]{v: c.v, i: c.i + n}
}

// Equal reports whether both cursors address the same position of the
// same vector.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.v == o.v && c.i == o.i
}
