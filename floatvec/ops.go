package floatvec

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/vector"
)

// Errors returned by floatvec functions.
var (
	ErrEmptyInput     = errors.New("floatvec: empty input")
	ErrLengthMismatch = errors.New("floatvec: length mismatch")
)

// Vector is the float64 vector the functions in this package operate on.
type Vector = vector.Vector[float64]

func sameSize(a, b *Vector) error {
	if a.Size() != b.Size() {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Size(), b.Size())
	}
	return nil
}

// Sum returns the sum of all elements, 0 for an empty vector.
func Sum(v *Vector) float64 {
	return vecmath.Sum(v.Slice())
}

// MaxAbs returns the largest absolute element value, 0 for an empty vector.
func MaxAbs(v *Vector) float64 {
	if v.IsEmpty() {
		return 0
	}
	return vecmath.MaxAbs(v.Slice())
}

// Dot returns the inner product of a and b.
func Dot(a, b *Vector) (float64, error) {
	if err := sameSize(a, b); err != nil {
		return 0, err
	}
	return vecmath.DotProduct(a.Slice(), b.Slice()), nil
}

// Scale multiplies every element of v by s in place.
func Scale(v *Vector, s float64) {
	vecmath.ScaleBlockInPlace(v.Slice(), s)
}

// Add adds src to dst element-wise in place.
func Add(dst, src *Vector) error {
	if err := sameSize(dst, src); err != nil {
		return err
	}
	vecmath.AddBlockInPlace(dst.Slice(), src.Slice())
	return nil
}

// Mul multiplies dst by src element-wise in place.
func Mul(dst, src *Vector) error {
	if err := sameSize(dst, src); err != nil {
		return err
	}
	vecmath.MulBlockInPlace(dst.Slice(), src.Slice())
	return nil
}

// Mean returns the arithmetic mean of v.
func Mean(v *Vector) (float64, error) {
	if v.IsEmpty() {
		return 0, ErrEmptyInput
	}
	return Sum(v) / float64(v.Size()), nil
}
