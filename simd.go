package fft32

import "golang.org/x/sys/cpu"

// vec4 is the "dual-complex" register layout: two consecutive complex
// samples [a+bi, c+di] packed as [a, b, c, d]. It is an ephemeral
// computation-time layout, not a memory-layout change — the underlying
// buffer is always plain interleaved (re, im) float32 pairs.
type vec4 [4]float32

// loadVec4 reads one dual-complex vector from buf at float32 index off.
func loadVec4(buf []float32, off int) vec4 {
	return vec4{buf[off], buf[off+1], buf[off+2], buf[off+3]}
}

// storeVec4 writes one dual-complex vector into buf at float32 index off.
func storeVec4(buf []float32, off int, v vec4) {
	buf[off] = v[0]
	buf[off+1] = v[1]
	buf[off+2] = v[2]
	buf[off+3] = v[3]
}

func addVec4(a, b vec4) vec4 {
	return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subVec4(a, b vec4) vec4 {
	return vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// dualComplexMul multiplies the dual-complex vector v = [a, b, c, d]
// (representing (a+bi), (c+di)) by the pre-replicated twiddle
// w = [wr, wi, wr, wi], producing [(a+bi)(wr+wi*i), (c+di)(wr+wi*i)]
// packed the same way. Spec formula: P = v*[wr,wr,wr,wr];
// S = [b,a,d,c]; Q = S*[wi,wi,wi,wi]*[-1,1,-1,1]; result = P + Q.
func dualComplexMul(v, w vec4) vec4 {
	wr, wi := w[0], w[1]
	p := vec4{v[0] * wr, v[1] * wr, v[2] * wr, v[3] * wr}
	s := vec4{v[1], v[0], v[3], v[2]}
	q := vec4{-s[0] * wi, s[1] * wi, -s[2] * wi, s[3] * wi}
	return addVec4(p, q)
}

// conjVec4 flips the imaginary lane of both packed complex samples; used
// by ifft's conjugate-input / conjugate-and-scale-output passes.
func conjVec4(v vec4) vec4 {
	return vec4{v[0], -v[1], v[2], -v[3]}
}

// singleComplexMul multiplies one complex sample (re, im) by (wr, wi).
func singleComplexMul(re, im, wr, wi float32) (float32, float32) {
	return re*wr - im*wi, re*wi + im*wr
}

// simdLevel records which architecture-tuned loop-unroll strategy the
// Stockham engine should use for its dual-packed (r >= 2) sub-path. The
// underlying arithmetic (dualComplexMul above) is identical at every
// level — only how many groups are processed per Go loop iteration
// changes — so detection never affects numerical output, only how the
// compiler's auto-vectorizer sees the inner loop. This mirrors the
// runtime cpu.X86.HasAVX2/HasAVX capability gate used to pick a butterfly
// implementation in the teacher codec's kissfft32_opt_amd64.go, without
// requiring hand-written assembly for a case this module never benchmarks
// against real hardware.
type simdLevel int

const (
	simdGeneric simdLevel = iota
	simdWideAMD64
	simdWideARM64
)

var hostSIMDLevel = detectSIMDLevel()

func detectSIMDLevel() simdLevel {
	switch {
	case cpu.X86.HasAVX2 || cpu.X86.HasAVX:
		return simdWideAMD64
	case cpu.ARM64.HasASIMD:
		return simdWideARM64
	default:
		return simdGeneric
	}
}

// stageUnroll reports how many dual-packed groups the generic Stockham
// loop should advance per iteration for the current host.
func stageUnroll() int {
	switch hostSIMDLevel {
	case simdWideAMD64, simdWideARM64:
		return 2
	default:
		return 1
	}
}
