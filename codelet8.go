package fft32

// Named eighth-root-of-unity constant from spec §4.4: c = sqrt(1/2),
// used by the ×W8^1 special multiply (c, -c) form. Kept here purely as a
// documentation anchor; stageTwiddles(8) below computes the same
// value (and the rest of the stage-2 table) directly.
const eighthRootC = 0.7071068

var (
	bitrev8   = bitReversalTable(8)
	twiddles8 = stageTwiddles(8)
)

// codelet8DIT computes the 8-point DIT FFT of PRIMARY in place.
// Bit-reversed load order: 0,4,2,6,1,5,3,7 (spec §4.4).
// Stage 0 (length 2): ×1, no-op.
// Stage 1 (length 4): ×1 and ×(-j) lane swap.
// Stage 2 (length 8): ×1, ×W8^1=(c,-c), ×(-j), ×W8^3=(-c,-c).
func codelet8DIT(buf []float32) {
	data := loadBitReversed(buf, 8, bitrev8)
	ditInPlace(data, twiddles8)
	storeNatural(buf, data)
}
