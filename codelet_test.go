package fft32

import (
	"reflect"
	"testing"

	"github.com/thesyncim/fft32/internal/reference"
)

func TestBitReversalTable(t *testing.T) {
	tests := []struct {
		m    int
		want []int
	}{
		{8, []int{0, 4, 2, 6, 1, 5, 3, 7}},
		{16, []int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}},
	}
	for _, tc := range tests {
		got := bitReversalTable(tc.m)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("bitReversalTable(%d) = %v, want %v", tc.m, got, tc.want)
		}
	}
}

func TestCodeletsMatchDirectDFT(t *testing.T) {
	sizes := []uint32{4, 8, 16, 32}
	for _, m := range sizes {
		x := randomComplex(int(m), int64(m))
		want := reference.DirectDFT(x)

		e := newComplexEngine(t, m)
		buf := e.Memory()
		f32 := f32View(buf)
		writeComplexInput(f32[primaryF32Offset:], x)

		if err := e.FFT(m); err != nil {
			t.Fatalf("FFT(%d): %v", m, err)
		}
		got := readComplexOutput(f32[primaryF32Offset:], int(m))

		err := rmsComplexError(got, want) / normComplex(want)
		if err > 1e-4 {
			t.Errorf("codelet m=%d relative RMS error %v too large", m, err)
		}
	}
}

// TestCodelet32MatchesGenericEngine cross-checks the size-specialized N=32
// codelet against the generic Stockham path run at the same size, the two
// independent code paths the spec flags as needing to agree for the N=32
// W4^1 sub-case.
func TestCodelet32MatchesGenericEngine(t *testing.T) {
	x := randomComplex(32, 99)

	e1 := newComplexEngine(t, 32)
	f1 := f32View(e1.Memory())
	writeComplexInput(f1[primaryF32Offset:], x)
	if err := e1.FFT(32); err != nil {
		t.Fatalf("codelet FFT(32): %v", err)
	}
	got1 := readComplexOutput(f1[primaryF32Offset:], 32)

	e2 := newComplexEngine(t, 32)
	f2 := f32View(e2.Memory())
	writeComplexInput(f2[primaryF32Offset:], x)
	if err := e2.PrecomputeTwiddles(32); err != nil {
		t.Fatalf("PrecomputeTwiddles(32): %v", err)
	}
	stockhamGeneral(f2, 32, noopTracer{})
	got2 := readComplexOutput(f2[primaryF32Offset:], 32)

	if rel := rmsComplexError(got1, got2) / normComplex(got2); rel > 1e-5 {
		t.Errorf("codelet32DIT vs stockhamGeneral(32) relative RMS error %v too large", rel)
	}
}
