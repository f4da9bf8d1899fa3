package fft32

import "unsafe"

// Segment layout of the engine's linear buffer, as byte offsets. All
// offsets are multiples of 16 so every segment starts on a dual-complex
// vector boundary.
const (
	primaryOffset = 0
	primarySize   = 32 * 1024

	scratchOffset = primaryOffset + primarySize
	scratchSize   = 32 * 1024

	twiddlesOffset = scratchOffset + scratchSize
	twiddlesSize   = 64 * 1024

	rfftTwiddlesOffset = twiddlesOffset + twiddlesSize
	rfftTwiddlesSize   = 128 * 1024

	bufferSize = rfftTwiddlesOffset + rfftTwiddlesSize // 256 KiB
)

// Same layout expressed in float32 element indices (byte offset / 4),
// since every segment holds nothing but little-endian f32 values.
const (
	primaryF32Offset = primaryOffset / 4
	primaryF32Len    = primarySize / 4

	scratchF32Offset = scratchOffset / 4
	scratchF32Len    = scratchSize / 4

	twiddlesF32Offset = twiddlesOffset / 4
	twiddlesF32Len    = twiddlesSize / 4

	rfftTwiddlesF32Offset = rfftTwiddlesOffset / 4
	rfftTwiddlesF32Len    = rfftTwiddlesSize / 4
)

// Capacity bounds from spec §5.
const (
	maxComplexSize = primarySize / 8    // 4096 complex samples
	maxRealSize    = maxComplexSize * 2 // 8192 real samples
	maxTwiddleM    = twiddlesSize / 16
)

const bufferAlign = 16

// allocAlignedBuffer returns a byte slice of exactly bufferSize bytes whose
// first element starts on a bufferAlign-byte boundary, so every segment
// (and every dual-complex vector within it) can be addressed without a
// misaligned read. Mirrors the over-allocate-then-trim idiom used for
// SIMD-friendly shard buffers in Reed-Solomon style buffer allocators.
func allocAlignedBuffer() []byte {
	raw := make([]byte, bufferSize+bufferAlign-1)
	misalign := uintptr(unsafe.Pointer(&raw[0])) & (bufferAlign - 1)
	if misalign == 0 {
		return raw[:bufferSize:bufferSize]
	}
	start := bufferAlign - misalign
	return raw[start : start+bufferSize : start+bufferSize]
}

// f32View reinterprets an aligned byte buffer as a float32 slice without
// copying. Safe because raw was allocated with bufferAlign-byte alignment
// and bufferSize is a multiple of 4.
func f32View(raw []byte) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&raw[0])), len(raw)/4)
}

// copyBuffer performs the Stockham ping-pong "landed in scratch" fixup:
// a straight 16-byte-granular (4-float32) move from src into dst. This is
// the only control path that moves data between PRIMARY and SCRATCH outside
// of the per-stage butterfly writes.
func copyBuffer(dst, src []float32) {
	copy(dst, src)
}
