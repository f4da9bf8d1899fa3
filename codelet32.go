package fft32

// Named thirty-second-root-of-unity constants from spec §4.4, used by the
// stage-4 (length-32) butterflies in addition to the eighth- and
// sixteenth-roots used in earlier stages. Documentation anchors;
// stageTwiddles(32) computes the same values.
const (
	thirtySecondRootC1 = 0.9807853
	thirtySecondRootC2 = 0.1950903
	thirtySecondRootC3 = 0.8314696
	thirtySecondRootC4 = 0.5555702
)

var (
	bitrev32   = bitReversalTable(32)
	twiddles32 = stageTwiddles(32)
)

// codelet32DIT computes the 32-point DIT FFT of PRIMARY in place.
//
// Spec §9 Open Questions flags that the original N=32 codelet's stage-3
// (W4^1, i.e. the ×(-j) lane swap) sub-case used a shuffle pattern that
// diverged from the pattern used for the identical twiddle elsewhere,
// while appearing arithmetically correct. This port shares one butterfly
// core (ditInPlace) across every stage and every size, so there is no
// per-stage shuffle divergence to reconcile: the W4^1 sub-case at stage 3
// runs through the exact same code path as every other twiddle. See
// TestCodelet32MatchesGenericEngine in codelet_test.go for the cross-check
// against stockhamGeneral(32) specifically targeting that sub-case.
func codelet32DIT(buf []float32) {
	data := loadBitReversed(buf, 32, bitrev32)
	ditInPlace(data, twiddles32)
	storeNatural(buf, data)
}
