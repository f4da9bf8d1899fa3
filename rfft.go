package fft32

// The RFFT post-processing step unpacks the forward complex FFT of the
// N/2 "packed" complex samples z[k]=x[2k]+i*x[2k+1] into the N/2+1-bin
// half-spectrum of the N real inputs. Writing z's DFT as Z = E + i*O
// (E, O being the DFTs of the even/odd real subsequences), the real
// signal symmetry E[M-k]=conj(E[k]), O[M-k]=conj(O[k]) lets every bin be
// recovered from Z[k] and Z[M-k] alone:
//
//	X[k]   = 0.5*(Z[k]+conj(Z[M-k])) + 0.5*Wrot   * (Z[k]-conj(Z[M-k]))
//	X[M-k] = 0.5*(Z[M-k]+conj(Z[k])) + 0.5*Wrot2  * (Z[M-k]-conj(Z[k]))
//
// with Wrot = (wi, -wr) and Wrot2 = (wi, wr) for W_N^k = (wr, wi). This is
// the one canonical formulation this port uses uniformly for every size
// tier (spec §9 Open Questions: the original has several arithmetically
// equivalent scalar/SIMD variants across size-specialized kernels; this
// port picks one and applies it everywhere, so correctness does not
// depend on which size tier a caller happens to exercise).

func complexAt(buf []float32, k uint32) complexF32 {
	off := 2 * k
	return complexF32{buf[off], buf[off+1]}
}

func writeComplexAt(buf []float32, k uint32, v complexF32) {
	off := 2 * k
	buf[off], buf[off+1] = v.re, v.im
}

func conjC(a complexF32) complexF32             { return complexF32{a.re, -a.im} }
func addC(a, b complexF32) complexF32           { return complexF32{a.re + b.re, a.im + b.im} }
func subC(a, b complexF32) complexF32           { return complexF32{a.re - b.re, a.im - b.im} }
func scaleC(a complexF32, s float32) complexF32 { return complexF32{a.re * s, a.im * s} }

func mulC(a, b complexF32) complexF32 {
	re, im := singleComplexMul(a.re, a.im, b.re, b.im)
	return complexF32{re, im}
}

// timesI returns i*a.
func timesI(a complexF32) complexF32 { return complexF32{-a.im, a.re} }

// transformRFFT reads n real f32 values from PRIMARY (the same bytes are
// already the m=n/2 packed complex samples fft needs, no data movement
// required) and leaves n/2+1 complex bins in their place. Precondition:
// RFFT twiddles precomputed for n.
func transformRFFT(buf []float32, n uint32, tracer Tracer) {
	m := n / 2
	transformFFT(buf, m, tracer)
	rfftPostProcess(buf, n, m)
}

func rfftPostProcess(buf []float32, n, m uint32) {
	// k=0 boundary: DC and Nyquist share Z[0] (spec §4.5).
	z0 := complexAt(buf, 0)
	writeComplexAt(buf, m, complexF32{z0.re - z0.im, 0})
	writeComplexAt(buf, 0, complexF32{z0.re + z0.im, 0})

	for k := uint32(1); k < m/2; k++ {
		a := complexAt(buf, k)
		b := complexAt(buf, m-k)
		wr, wi := rfftTwiddle(buf, k)

		bc := conjC(b)
		ac := conjC(a)
		sumK := addC(a, bc)
		diffK := subC(a, bc)
		sumMK := addC(b, ac)
		diffMK := subC(b, ac)

		wrot := complexF32{wi, -wr}
		wrot2 := complexF32{wi, wr}

		xk := scaleC(addC(sumK, mulC(wrot, diffK)), 0.5)
		xmk := scaleC(addC(sumMK, mulC(wrot2, diffMK)), 0.5)

		writeComplexAt(buf, k, xk)
		writeComplexAt(buf, m-k, xmk)
	}

	if m%2 == 0 && m > 2 {
		half := m / 2
		writeComplexAt(buf, half, conjC(complexAt(buf, half)))
	}
}

// transformIRFFT is the exact inverse of transformRFFT: it reverses the
// half-spectrum post-processing back into m packed complex samples, then
// runs the inverse complex FFT, leaving n real outputs in PRIMARY in
// order. Precondition: RFFT twiddles precomputed for n.
func transformIRFFT(buf []float32, n uint32, tracer Tracer) {
	m := n / 2
	rfftPreProcess(buf, n, m)
	transformIFFT(buf, m, tracer)
}

func rfftPreProcess(buf []float32, n, m uint32) {
	x0 := complexAt(buf, 0)
	xm := complexAt(buf, m)
	z0re := 0.5 * (x0.re + xm.re)
	z0im := 0.5 * (x0.re - xm.re)
	writeComplexAt(buf, 0, complexF32{z0re, z0im})

	for k := uint32(1); k < m/2; k++ {
		xk := complexAt(buf, k)
		xmk := complexAt(buf, m-k)
		wr, wi := rfftTwiddle(buf, k)
		wConj := complexF32{wr, -wi}

		xmkConj := conjC(xmk)
		ek := scaleC(addC(xk, xmkConj), 0.5)
		dk := subC(xk, xmkConj)
		ok := scaleC(mulC(wConj, dk), 0.5)

		zk := addC(ek, timesI(ok))
		zmk := addC(conjC(ek), timesI(conjC(ok)))

		writeComplexAt(buf, k, zk)
		writeComplexAt(buf, m-k, zmk)
	}

	if m%2 == 0 && m > 2 {
		half := m / 2
		writeComplexAt(buf, half, conjC(complexAt(buf, half)))
	}
}
