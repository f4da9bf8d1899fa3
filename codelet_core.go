package fft32

import "math"

// The four size-specialized codelets (codelet4, codelet8DIT, codelet16DIT,
// codelet32DIT) share one decimation-in-time butterfly core. Each codelet
// supplies its own bit-reversal permutation and its own embedded per-stage
// twiddle table; none of them ever read the TWIDDLES segment.
//
// Twiddle constants are computed once at package init via a double
// precision cos/sin, then stored as package-level float32 tables — the Go
// equivalent of embedding them as vector literals in a hand-unrolled
// kernel, the same way the teacher codec precomputes its twiddle tables
// with math.Cos/math.Sin cast to float32 (celt/kissfft32.go computeTwiddles)
// rather than via a runtime lookup segment.

// bitReversalTable returns, for an m-element transform (m a power of two),
// the permutation p such that reading input[p[i]] for i in [0, m) yields
// bit-reversed-index order. Matches the explicit sequences given in the
// spec for m=8 (0,4,2,6,1,5,3,7) and m=16 (0,8,4,12,2,10,6,14,1,9,5,13,3,
// 11,7,15).
func bitReversalTable(m int) []int {
	bits := 0
	for 1<<uint(bits) < m {
		bits++
	}
	table := make([]int, m)
	for i := 0; i < m; i++ {
		table[i] = reverseBits(i, bits)
	}
	return table
}

func reverseBits(v, bits int) int {
	r := 0
	for b := 0; b < bits; b++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}

// stageTwiddles builds the per-stage twiddle table for an iterative radix-2
// DIT pass over an m-sample transform: stageTwiddles(m)[s] holds the
// 1<<s complex values W_{1<<(s+1)}^k for k in [0, 1<<s).
func stageTwiddles(m int) [][]complexF32 {
	stages := 0
	for 1<<uint(stages) < m {
		stages++
	}
	out := make([][]complexF32, stages)
	for s := 0; s < stages; s++ {
		length := 1 << uint(s+1)
		half := length / 2
		row := make([]complexF32, half)
		for k := 0; k < half; k++ {
			theta := -2 * math.Pi * float64(k) / float64(length)
			row[k] = complexF32{float32(math.Cos(theta)), float32(math.Sin(theta))}
		}
		out[s] = row
	}
	return out
}

// complexF32 is a single (re, im) pair, used for the small embedded
// codelet twiddle tables (as opposed to vec4, which packs two of these for
// the Stockham dual-complex path).
type complexF32 struct {
	re, im float32
}

// ditInPlace runs an iterative radix-2 decimation-in-time transform over
// data (length m, a power of two, already loaded in bit-reversed order) and
// leaves the result in natural order. twiddles must be the table produced
// by stageTwiddles(m).
func ditInPlace(data []complexF32, twiddles [][]complexF32) {
	m := len(data)
	for s, row := range twiddles {
		length := 1 << uint(s+1)
		half := length / 2
		for start := 0; start < m; start += length {
			for k := 0; k < half; k++ {
				w := row[k]
				a := data[start+k]
				b := data[start+k+half]
				tr, ti := singleComplexMul(b.re, b.im, w.re, w.im)
				data[start+k] = complexF32{a.re + tr, a.im + ti}
				data[start+k+half] = complexF32{a.re - tr, a.im - ti}
			}
		}
	}
}

// loadBitReversed reads m complex samples from buf (PRIMARY, float32 view)
// in bit-reversed order into a scratch complexF32 slice.
func loadBitReversed(buf []float32, m int, perm []int) []complexF32 {
	data := make([]complexF32, m)
	for i, p := range perm {
		off := 2 * p
		data[i] = complexF32{buf[off], buf[off+1]}
	}
	return data
}

// storeNatural writes m complex samples back into buf (PRIMARY) in natural
// order, 16 bytes (4 float32, one dual-complex vector) at a time per the
// spec's "final store writes 16 consecutive output bytes per pair".
func storeNatural(buf []float32, data []complexF32) {
	for i := 0; i+1 < len(data); i += 2 {
		off := 2 * i
		buf[off] = data[i].re
		buf[off+1] = data[i].im
		buf[off+2] = data[i+1].re
		buf[off+3] = data[i+1].im
	}
}
