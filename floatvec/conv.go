package floatvec

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vector/vector"
)

// directThreshold is the longest kernel convolved in the time domain.
const directThreshold = 64

// Convolve returns the full linear convolution of a and b, of size
// a.Size()+b.Size()-1. Short kernels use direct convolution, longer ones
// use the FFT.
func Convolve(a, b *Vector) (*Vector, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, ErrEmptyInput
	}
	if b.Size() > a.Size() {
		a, b = b, a
	}
	if b.Size() <= directThreshold {
		return Direct(a, b)
	}
	return FFTConvolve(a, b)
}

// Direct performs O(N*M) time-domain convolution of a and b.
func Direct(a, b *Vector) (*Vector, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, ErrEmptyInput
	}

	out := vector.NewSized[float64](a.Size() + b.Size() - 1)
	dst, kernel := out.Slice(), b.Slice()
	m := len(kernel)

	scaled := make([]float64, m)
	for i, x := range a.All() {
		vecmath.ScaleBlock(scaled, kernel, x)
		vecmath.AddBlockInPlace(dst[i:i+m], scaled)
	}
	return out, nil
}

// FFTConvolve computes the linear convolution of a and b through a single
// zero-padded FFT of the next power of two.
func FFTConvolve(a, b *Vector) (*Vector, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, ErrEmptyInput
	}

	outLen := a.Size() + b.Size() - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("floatvec: failed to create FFT plan: %w", err)
	}

	aFreq, err := forward(plan, a, fftSize)
	if err != nil {
		return nil, err
	}
	bFreq, err := forward(plan, b, fftSize)
	if err != nil {
		return nil, err
	}
	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, aFreq); err != nil {
		return nil, fmt.Errorf("floatvec: inverse FFT failed: %w", err)
	}

	out := vector.NewSized[float64](outLen)
	dst := out.Slice()
	for i := range dst {
		dst[i] = real(timeDomain[i])
	}
	return out, nil
}

func forward(plan *algofft.Plan[complex128], v *Vector, fftSize int) ([]complex128, error) {
	padded := make([]complex128, fftSize)
	for i, x := range v.All() {
		padded[i] = complex(x, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("floatvec: forward FFT failed: %w", err)
	}
	return freq, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
