package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same size and equal elements in
// order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Less reports whether a orders before b lexicographically using the
// element < operator. A strict prefix orders first.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return LessFunc(a, b, func(x, y T) bool { return x < y })
}

// LessOrEqual is !Less(b, a).
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater is Less(b, a).
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual is !Less(a, b).
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// LessFunc is Less with a caller-supplied strict weak ordering.
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	as, bs := a.Slice(), b.Slice()
	n := min(len(as), len(bs))
	for i := 0; i < n; i++ {
		if less(as[i], bs[i]) {
			return true
		}
		if less(bs[i], as[i]) {
			return false
		}
	}
	return len(as) < len(bs)
}
