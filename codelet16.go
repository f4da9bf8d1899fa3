package fft32

// Named sixteenth-root-of-unity constants from spec §4.4, used by the
// stage-3 (length-16) butterflies in addition to the eighth-roots shared
// with codelet8DIT. Documentation anchors; stageTwiddles(16)
// computes the same values.
const (
	sixteenthRootC1 = 0.9238795
	sixteenthRootC2 = 0.3826834
)

var (
	bitrev16   = bitReversalTable(16)
	twiddles16 = stageTwiddles(16)
)

// codelet16DIT computes the 16-point DIT FFT of PRIMARY in place.
// Bit-reversed load order: 0,8,4,12,2,10,6,14,1,9,5,13,3,11,7,15 (spec §4.4).
func codelet16DIT(buf []float32) {
	data := loadBitReversed(buf, 16, bitrev16)
	ditInPlace(data, twiddles16)
	storeNatural(buf, data)
}
