package fft32

import (
	"math"
	"testing"
)

func TestRFFTIRFFTRoundTrip(t *testing.T) {
	sizes := []uint32{8, 16, 32, 64, 256, 2048}
	for _, n := range sizes {
		x := randomReal(int(n), int64(n)+2000)

		e := newRFFTEngine(t, n)
		f32 := f32View(e.Memory())
		for i, v := range x {
			f32[primaryF32Offset+i] = float32(v)
		}

		if err := e.RFFT(n); err != nil {
			t.Fatalf("RFFT(%d): %v", n, err)
		}
		if err := e.IRFFT(n); err != nil {
			t.Fatalf("IRFFT(%d): %v", n, err)
		}

		got := make([]float64, n)
		for i := range got {
			got[i] = float64(f32[primaryF32Offset+i])
		}

		if rel := rmsRealError(got, x) / normReal(x); rel > 1e-4 {
			t.Errorf("RFFT/IRFFT round trip n=%d relative RMS error %v too large", n, rel)
		}
	}
}

// TestRFFTHalfSpectrumBoundaryBinsAreReal checks that the DC and Nyquist
// bins of the half-spectrum carry zero imaginary part, as required for any
// real input (spec §4.5).
func TestRFFTHalfSpectrumBoundaryBinsAreReal(t *testing.T) {
	const n = 64
	x := randomReal(n, 5)

	e := newRFFTEngine(t, n)
	f32 := f32View(e.Memory())
	for i, v := range x {
		f32[primaryF32Offset+i] = float32(v)
	}
	if err := e.RFFT(n); err != nil {
		t.Fatalf("RFFT(%d): %v", n, err)
	}

	dc := complexAt(f32[primaryF32Offset:], 0)
	nyq := complexAt(f32[primaryF32Offset:], n/2)

	if dc.im != 0 {
		t.Errorf("DC bin imaginary part = %v, want 0", dc.im)
	}
	if nyq.im != 0 {
		t.Errorf("Nyquist bin imaginary part = %v, want 0", nyq.im)
	}
}

// TestRFFTMatchesDirectRealDFT cross-validates the half-spectrum against an
// independent complex-domain DFT of the zero-padded-to-complex real input.
func TestRFFTMatchesDirectRealDFT(t *testing.T) {
	const n = 32
	x := randomReal(n, 123)

	e := newRFFTEngine(t, n)
	f32 := f32View(e.Memory())
	for i, v := range x {
		f32[primaryF32Offset+i] = float32(v)
	}
	if err := e.RFFT(n); err != nil {
		t.Fatalf("RFFT(%d): %v", n, err)
	}

	complexX := make([]complex128, n)
	for i, v := range x {
		complexX[i] = complex(v, 0)
	}
	want := directDFTComplex(complexX)

	for k := 0; k <= n/2; k++ {
		got := complexAt(f32[primaryF32Offset:], uint32(k))
		wantRe, wantIm := real(want[k]), imag(want[k])
		if d := math.Hypot(float64(got.re)-wantRe, float64(got.im)-wantIm); d > 5e-3 {
			t.Errorf("bin %d: got (%v,%v), want (%v,%v), dist %v", k, got.re, got.im, wantRe, wantIm, d)
		}
	}
}

func directDFTComplex(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for tt := 0; tt < n; tt++ {
			angle := -2 * math.Pi * float64(k) * float64(tt) / float64(n)
			sum += x[tt] * complex(math.Cos(angle), math.Sin(angle))
		}
		out[k] = sum
	}
	return out
}
