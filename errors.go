package fft32

import "errors"

// Construction and precondition errors. The transform kernels themselves
// have no fallible runtime path (spec: preconditions are the caller's
// responsibility and are never enforced with a trap); these sentinels
// guard the instance-lifecycle API that wraps the kernels.
var (
	// ErrSizeNotPowerOfTwo indicates a size argument was not a power of two.
	ErrSizeNotPowerOfTwo = errors.New("fft32: size must be a power of two")

	// ErrSizeOutOfRange indicates a size argument was outside the buffer's
	// fixed capacity (complex sizes up to 4096, real sizes up to 8192).
	ErrSizeOutOfRange = errors.New("fft32: size exceeds engine capacity")

	// ErrSizeTooSmall indicates a size smaller than the transform's floor
	// (4 for complex FFT/IFFT, 8 for RFFT/IRFFT).
	ErrSizeTooSmall = errors.New("fft32: size below minimum transform size")

	// ErrTwiddlesNotPrepared indicates a transform was called before the
	// matching twiddle table had ever been precomputed.
	ErrTwiddlesNotPrepared = errors.New("fft32: twiddle table not precomputed")

	// ErrTwiddlesSizeMismatch indicates the twiddle table currently held in
	// the engine was precomputed for a different size than requested.
	ErrTwiddlesSizeMismatch = errors.New("fft32: twiddle table valid for a different size")
)
