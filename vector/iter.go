package vector

import "iter"

// All yields index/value pairs over the live elements in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Get(i)) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.Get(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.Get(i)) {
				return
			}
		}
	}
}
