package fft32

import (
	"testing"
)

func TestFFTIFFTRoundTrip(t *testing.T) {
	sizes := []uint32{4, 8, 16, 32, 64, 256, 2048}
	for _, m := range sizes {
		x := randomComplex(int(m), int64(m)+1000)

		e := newComplexEngine(t, m)
		f32 := f32View(e.Memory())
		writeComplexInput(f32[primaryF32Offset:], x)

		if err := e.FFT(m); err != nil {
			t.Fatalf("FFT(%d): %v", m, err)
		}
		if err := e.IFFT(m); err != nil {
			t.Fatalf("IFFT(%d): %v", m, err)
		}
		got := readComplexOutput(f32[primaryF32Offset:], int(m))

		if rel := rmsComplexError(got, x) / normComplex(x); rel > 1e-4 {
			t.Errorf("round trip m=%d relative RMS error %v too large", m, rel)
		}
	}
}

func TestFFTParseval(t *testing.T) {
	const m = 512
	x := randomComplex(m, 42)

	e := newComplexEngine(t, m)
	f32 := f32View(e.Memory())
	writeComplexInput(f32[primaryF32Offset:], x)
	if err := e.FFT(m); err != nil {
		t.Fatalf("FFT(%d): %v", m, err)
	}
	X := readComplexOutput(f32[primaryF32Offset:], m)

	var energyX, energyIn float64
	for _, v := range X {
		energyX += real(v)*real(v) + imag(v)*imag(v)
	}
	for _, v := range x {
		energyIn += real(v)*real(v) + imag(v)*imag(v)
	}
	energyX /= float64(m)

	if rel := (energyX - energyIn) / energyIn; rel > 1e-3 || rel < -1e-3 {
		t.Errorf("Parseval mismatch: sum|X|^2/m = %v, sum|x|^2 = %v (rel %v)", energyX, energyIn, rel)
	}
}

func TestFFTDispatchesSizeSpecializedCodelets(t *testing.T) {
	for _, m := range []uint32{4, 8, 16, 32} {
		var traced uint32 = 999
		e := newComplexEngine(t, m)
		e.SetTracer(&codeletTracer{seen: &traced})
		f32 := f32View(e.Memory())
		writeComplexInput(f32[primaryF32Offset:], randomComplex(int(m), 1))
		if err := e.FFT(m); err != nil {
			t.Fatalf("FFT(%d): %v", m, err)
		}
		if traced != m {
			t.Errorf("FFT(%d) traced codelet size %d, want %d", m, traced, m)
		}
	}

	var traced uint32 = 999
	e := newComplexEngine(t, 64)
	e.SetTracer(&codeletTracer{seen: &traced})
	f32 := f32View(e.Memory())
	writeComplexInput(f32[primaryF32Offset:], randomComplex(64, 2))
	if err := e.FFT(64); err != nil {
		t.Fatalf("FFT(64): %v", err)
	}
	if traced != 0 {
		t.Errorf("FFT(64) traced codelet size %d, want 0 (generic engine)", traced)
	}
}

type codeletTracer struct {
	noopTracer
	seen *uint32
}

func (c *codeletTracer) TraceCodelet(size uint32) { *c.seen = size }
