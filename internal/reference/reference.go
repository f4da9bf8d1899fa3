// Package reference provides independent double-precision oracles used
// only by this module's tests, never by the engine itself. It stands in
// for "a reference Stockham implementation" (spec Testable Property 7)
// and for the direct-DFT-from-definition comparison of Testable Scenario
// F, using gonum's FFT implementation as the independent code path.
package reference

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ComplexFFT returns the forward DFT of x (length must be a power of two)
// computed by gonum, matching this engine's un-normalized forward
// convention (no 1/N scaling).
func ComplexFFT(x []complex128) []complex128 {
	n := len(x)
	fft := fourier.NewCmplxFFT(n)
	return fft.Coefficients(nil, x)
}

// DirectDFT computes the O(n^2) definition-of-DFT transform, used as an
// implementation-independent oracle distinct from both this engine and
// gonum's FFT.
func DirectDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for t := 0; t < n; t++ {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}
