package floatvec

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vector/internal/testutil"
	"github.com/cwbudde/algo-vector/vector"
)

func TestSum(t *testing.T) {
	v := vector.Of(1.5, 2.5, -1)
	v.Reserve(16)
	if got := Sum(v); got != 3 {
		t.Fatalf("Sum = %v, want 3", got)
	}
	if got := Sum(vector.New[float64]()); got != 0 {
		t.Fatalf("Sum(empty) = %v, want 0", got)
	}
}

func TestSumIgnoresSpareCapacity(t *testing.T) {
	v := vector.Of(1.0, 2, 3, 4)
	v.Resize(2)
	if got := Sum(v); got != 3 {
		t.Fatalf("Sum = %v, want 3", got)
	}
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs(vector.Of(1.0, -7, 3)); got != 7 {
		t.Fatalf("MaxAbs = %v, want 7", got)
	}
	if got := MaxAbs(vector.New[float64]()); got != 0 {
		t.Fatalf("MaxAbs(empty) = %v, want 0", got)
	}
}

func TestDot(t *testing.T) {
	got, err := Dot(vector.Of(1.0, 2, 3), vector.Of(4.0, 5, 6))
	if err != nil {
		t.Fatalf("Dot error: %v", err)
	}
	if got != 32 {
		t.Fatalf("Dot = %v, want 32", got)
	}

	_, err = Dot(vector.Of(1.0), vector.Of(1.0, 2))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Dot error = %v, want ErrLengthMismatch", err)
	}
}

func TestScaleAddMul(t *testing.T) {
	v := vector.Of(1.0, 2, 3)
	Scale(v, 2)
	testutil.RequireSliceNearlyEqual(t, v.Slice(), []float64{2, 4, 6}, 0)

	if err := Add(v, vector.Of(1.0, 1, 1)); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, v.Slice(), []float64{3, 5, 7}, 0)

	if err := Mul(v, vector.Of(2.0, 0, -1)); err != nil {
		t.Fatalf("Mul error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, v.Slice(), []float64{6, 0, -7}, 0)

	if err := Add(v, vector.Of(1.0)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Add error = %v, want ErrLengthMismatch", err)
	}
	if err := Mul(v, vector.New[float64]()); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Mul error = %v, want ErrLengthMismatch", err)
	}
}

func TestMean(t *testing.T) {
	got, err := Mean(vector.Of(1.0, 2, 3, 6))
	if err != nil {
		t.Fatalf("Mean error: %v", err)
	}
	if math.Abs(got-3) > 1e-15 {
		t.Fatalf("Mean = %v, want 3", got)
	}
	if _, err := Mean(vector.New[float64]()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Mean error = %v, want ErrEmptyInput", err)
	}
}
