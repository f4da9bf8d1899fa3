package fft32

// precomputeComplexTwiddles fills the TWIDDLES segment of buf with M
// pre-replicated entries W_M^k = (cos(-2*pi*k/M), sin(-2*pi*k/M)), each
// stored as [re, im, re, im] starting at float32 offset 4*k within the
// segment. For M <= 4 the generic Stockham engine is never used, so the
// table is left untouched (spec §4.2).
func precomputeComplexTwiddles(buf []float32, m uint32) {
	if m <= 4 {
		return
	}
	seg := buf[twiddlesF32Offset : twiddlesF32Offset+twiddlesF32Len]
	step := twoPi32 / float32(m)
	for k := uint32(0); k < m; k++ {
		theta := -step * float32(k)
		re, im := cos32(theta), sin32(theta)
		off := 4 * k
		seg[off] = re
		seg[off+1] = im
		seg[off+2] = re
		seg[off+3] = im
	}
}

// precomputeRFFTTwiddles fills TWIDDLES for M=N/2 (via
// precomputeComplexTwiddles) and fills RFFT_TWIDDLES with N/2+1 entries
// W_N^k = (cos(-2*pi*k/N), sin(-2*pi*k/N)), 8 bytes (one complexF32) each.
// Post-processing twiddles use the full-size angle W_N, not W_{N/2}
// (spec §4.2).
func precomputeRFFTTwiddles(buf []float32, n uint32) {
	m := n / 2
	precomputeComplexTwiddles(buf, m)

	seg := buf[rfftTwiddlesF32Offset : rfftTwiddlesF32Offset+rfftTwiddlesF32Len]
	step := twoPi32 / float32(n)
	for k := uint32(0); k <= m; k++ {
		theta := -step * float32(k)
		off := 2 * k
		seg[off] = cos32(theta)
		seg[off+1] = sin32(theta)
	}
}

// rfftTwiddle returns W_N^k = (wr, wi) from the precomputed RFFT_TWIDDLES
// segment.
func rfftTwiddle(buf []float32, k uint32) (wr, wi float32) {
	seg := buf[rfftTwiddlesF32Offset : rfftTwiddlesF32Offset+rfftTwiddlesF32Len]
	off := 2 * k
	return seg[off], seg[off+1]
}

// complexTwiddle returns the pre-replicated W_M^k vector from TWIDDLES.
func complexTwiddle(buf []float32, k uint32) vec4 {
	seg := buf[twiddlesF32Offset : twiddlesF32Offset+twiddlesF32Len]
	off := 4 * k
	return vec4{seg[off], seg[off+1], seg[off+2], seg[off+3]}
}
