package fft32

// transformIFFT computes (1/m) * conj(FFT(conj(x))) in place over the m
// complex samples held in PRIMARY (spec §4.6): conjugate every sample,
// run the forward transform, then scale by 1/m and conjugate again in one
// fused pass.
func transformIFFT(buf []float32, m uint32, tracer Tracer) {
	primary := buf[primaryF32Offset : primaryF32Offset+primaryF32Len]
	conjugateInPlace(primary, m)
	transformFFT(buf, m, tracer)
	scaleAndConjugateInPlace(primary, m)
}

// conjugateInPlace flips the imaginary lane of every one of the first n
// complex samples (n always even: a power of two >= 4), processed two at
// a time as one dual-complex vector.
func conjugateInPlace(buf []float32, n uint32) {
	for i := uint32(0); i < n/2; i++ {
		off := int(i) * 4
		storeVec4(buf, off, conjVec4(loadVec4(buf, off)))
	}
}

// scaleAndConjugateInPlace multiplies every one of the first n complex
// samples by 1/n and flips the imaginary lane, fusing both into one write
// per element as in the spec's step (c).
func scaleAndConjugateInPlace(buf []float32, n uint32) {
	scale := 1 / float32(n)
	for i := uint32(0); i < n/2; i++ {
		off := int(i) * 4
		v := loadVec4(buf, off)
		buf[off] = v[0] * scale
		buf[off+1] = -v[1] * scale
		buf[off+2] = v[2] * scale
		buf[off+3] = -v[3] * scale
	}
}
