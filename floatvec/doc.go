// Package floatvec provides numeric operations on float64 vectors.
//
// Element-wise kernels (sum, dot product, scaling, accumulation) dispatch to
// the SIMD implementations of algo-vecmath. [Convolve] picks between direct
// time-domain convolution for short kernels and FFT convolution for long
// ones:
//
//	out, err := floatvec.Convolve(signal, kernel)
//
// All functions operate on the live elements of the vectors they are given
// and never touch spare capacity.
package floatvec
