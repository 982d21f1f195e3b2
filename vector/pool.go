package vector

import "sync"

// Pool provides sync.Pool-based Vector reuse for loops that repeatedly
// need scratch vectors of similar size.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return New[T]()
			},
		},
	}
}

// Get returns a vector holding length zero values.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Vector[T] {
	v := p.pool.Get().(*Vector[T])
	v.Clear()
	v.Resize(length)
	return v
}

// Put returns a vector to the pool for reuse.
// The caller must not use the vector after calling Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	p.pool.Put(v)
}
