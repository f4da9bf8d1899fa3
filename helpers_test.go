package fft32

import (
	"math"
	"math/rand"
)

// writeComplexInput loads a []complex128 sequence into PRIMARY as
// interleaved little-endian f32 pairs.
func writeComplexInput(buf []float32, x []complex128) {
	for i, v := range x {
		buf[2*i] = float32(real(v))
		buf[2*i+1] = float32(imag(v))
	}
}

// readComplexOutput reads n interleaved complex samples back out of
// PRIMARY.
func readComplexOutput(buf []float32, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(float64(buf[2*i]), float64(buf[2*i+1]))
	}
	return out
}

func randomComplex(n int, seed int64) []complex128 {
	r := rand.New(rand.NewSource(seed))
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(r.NormFloat64(), r.NormFloat64())
	}
	return x
}

func randomReal(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = r.NormFloat64()
	}
	return x
}

func rmsComplexError(a, b []complex128) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += real(d)*real(d) + imag(d)*imag(d)
	}
	return math.Sqrt(sum / float64(len(a)))
}

func normComplex(a []complex128) float64 {
	var sum float64
	for _, v := range a {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

func rmsRealError(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)))
}

func normReal(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func newComplexEngine(t testingTB, m uint32) *Engine {
	t.Helper()
	e := NewEngine()
	if m > 4 {
		if err := e.PrecomputeTwiddles(m); err != nil {
			t.Fatalf("PrecomputeTwiddles(%d): %v", m, err)
		}
	}
	return e
}

func newRFFTEngine(t testingTB, n uint32) *Engine {
	t.Helper()
	e := NewEngine()
	if err := e.PrecomputeRFFTTwiddles(n); err != nil {
		t.Fatalf("PrecomputeRFFTTwiddles(%d): %v", n, err)
	}
	return e
}

// testingTB lets helpers accept either *testing.T or *testing.B without
// importing testing into non-test files.
type testingTB interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
