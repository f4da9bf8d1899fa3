package fft32

// stockhamGeneral computes the in-place forward DFT of m complex samples
// held in PRIMARY, for m >= 64 (spec §4.3: the generic Stockham engine;
// sizes handled by a size-specialized codelet never reach this path).
// Precondition: TWIDDLES has been precomputed for m (checked by the
// caller, Engine.FFT).
//
// This is Stockham's auto-sort, out-of-place, decimation-in-frequency
// algorithm: each stage halves the butterfly span r and doubles the group
// count l (invariant l*r == m/2) until r reaches 1, ping-ponging between
// PRIMARY and SCRATCH. Output lands in natural order without a
// bit-reversal pass.
func stockhamGeneral(buf []float32, m uint32, tracer Tracer) {
	primary := buf[primaryF32Offset : primaryF32Offset+primaryF32Len]
	scratch := buf[scratchF32Offset : scratchF32Offset+scratchF32Len]

	src := primary
	dst := scratch
	srcIsPrimary := true

	r := m / 2
	l := uint32(1)

	for r >= 1 {
		subPath := "dual"
		if r == 1 {
			subPath = "single"
		}
		tracer.TraceStage(m, int(l), int(r), subPath)

		for j := uint32(0); j < l; j++ {
			w := complexTwiddle(buf, j*r)
			base := j * 2 * r
			mOff := j * r

			if r >= 2 {
				// Groups of stageUnroll() dual-complex vectors are
				// processed per outer-loop step, the portable-Go analog of
				// the teacher's cpu.X86.HasAVX2/HasAVX-gated codelet
				// choice: the arithmetic per vector never changes, only
				// how many independent vectors are dispatched before the
				// loop condition is re-checked.
				unroll := uint32(stageUnroll())
				step := 2 * unroll
				k := uint32(0)
				for ; k+step <= r; k += step {
					for u := uint32(0); u < unroll; u++ {
						stockhamButterfly(dst, src, w, base, mOff, k+2*u, r, m)
					}
				}
				for ; k < r; k += 2 {
					stockhamButterfly(dst, src, w, base, mOff, k, r, m)
				}
			} else {
				// r == 1: only one pair per group; two consecutive groups
				// would fit one dual-complex vector, but plain Go gets no
				// benefit from emulating that transpose without real SIMD
				// shuffles, so this falls back to a single scalar
				// butterfly per group (same arithmetic, see DESIGN.md).
				idx1 := 2 * int(base)
				idx2 := idx1 + 2
				ar, ai := src[idx1], src[idx1+1]
				br, bi := src[idx2], src[idx2+1]
				tr, ti := singleComplexMul(br, bi, w[0], w[1])

				dstIdx1 := 2 * int(mOff)
				dstIdx2 := dstIdx1 + int(m)
				dst[dstIdx1], dst[dstIdx1+1] = ar+tr, ai+ti
				dst[dstIdx2], dst[dstIdx2+1] = ar-tr, ai-ti
			}
		}

		src, dst = dst, src
		srcIsPrimary = !srcIsPrimary
		r /= 2
		l *= 2
	}

	if !srcIsPrimary {
		copyBuffer(primary[:2*m], scratch[:2*m])
	}
}

// stockhamButterfly performs one dual-complex radix-2 butterfly: it reads
// the pair (src[base+k], src[base+k+r]) and writes the sum/difference pair
// into dst at (mOff+k, mOff+k+m/2), per the Stockham DIF recurrence. All
// positions are complex-sample indices.
func stockhamButterfly(dst, src []float32, w vec4, base, mOff, k, r, m uint32) {
	idx1 := 2 * int(base+k)
	idx2 := idx1 + 2*int(r)
	a := loadVec4(src, idx1)
	b := loadVec4(src, idx2)
	bp := dualComplexMul(b, w)
	sum := addVec4(a, bp)
	diff := subVec4(a, bp)

	dstIdx1 := 2 * int(mOff+k)
	dstIdx2 := dstIdx1 + int(m)
	storeVec4(dst, dstIdx1, sum)
	storeVec4(dst, dstIdx2, diff)
}
