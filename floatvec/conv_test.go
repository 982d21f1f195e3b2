package floatvec

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vector/internal/testutil"
	"github.com/cwbudde/algo-vector/vector"
)

func naiveConvolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}
	return out
}

func TestDirect(t *testing.T) {
	out, err := Direct(vector.Of(1.0, 2, 3), vector.Of(0.0, 1, 0.5))
	if err != nil {
		t.Fatalf("Direct error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Slice(), []float64{0, 1, 2.5, 4, 1.5}, 1e-12)
	if out.Capacity() != out.Size() {
		t.Fatalf("Capacity() = %d, want %d", out.Capacity(), out.Size())
	}
}

func TestConvolveImpulseIsIdentity(t *testing.T) {
	signal := testutil.DeterministicNoise(1, 1, 50)
	out, err := Convolve(vector.Of(signal...), vector.Of(testutil.Impulse(1, 0)...))
	if err != nil {
		t.Fatalf("Convolve error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Slice(), signal, 1e-12)
}

func TestConvolveMatchesNaive(t *testing.T) {
	tests := []struct {
		name       string
		lenA, lenB int
	}{
		{name: "short kernel", lenA: 200, lenB: 16},
		{name: "threshold kernel", lenA: 200, lenB: directThreshold},
		{name: "long kernel", lenA: 300, lenB: 129},
		{name: "swapped", lenA: 100, lenB: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.DeterministicNoise(7, 1, tt.lenA)
			b := testutil.DeterministicNoise(8, 1, tt.lenB)
			out, err := Convolve(vector.Of(a...), vector.Of(b...))
			if err != nil {
				t.Fatalf("Convolve error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, out.Slice(), naiveConvolve(a, b), 1e-9)
		})
	}
}

func TestFFTConvolveMatchesDirect(t *testing.T) {
	a := vector.Of(testutil.DeterministicNoise(3, 1, 33)...)
	b := vector.Of(testutil.DeterministicNoise(4, 1, 5)...)

	direct, err := Direct(a, b)
	if err != nil {
		t.Fatalf("Direct error: %v", err)
	}
	fft, err := FFTConvolve(a, b)
	if err != nil {
		t.Fatalf("FFTConvolve error: %v", err)
	}

	d, err := testutil.MaxAbsDiff(direct.Slice(), fft.Slice())
	if err != nil {
		t.Fatal(err)
	}
	if d > 1e-10 {
		t.Fatalf("max diff %v between direct and FFT convolution", d)
	}
}

func TestConvolveEmpty(t *testing.T) {
	empty := vector.New[float64](vector.WithCapacity(4))
	one := vector.Of(1.0)
	for name, fn := range map[string]func(a, b *Vector) (*Vector, error){
		"Convolve":    Convolve,
		"Direct":      Direct,
		"FFTConvolve": FFTConvolve,
	} {
		if _, err := fn(empty, one); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%s(empty, x) error = %v, want ErrEmptyInput", name, err)
		}
		if _, err := fn(one, empty); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%s(x, empty) error = %v, want ErrEmptyInput", name, err)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128} {
		if got := nextPowerOf2(n); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", n, got, want)
		}
	}
}
