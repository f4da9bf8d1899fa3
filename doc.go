// Package fft32 is a single-precision, power-of-two-only FFT engine.
//
// It provides three transforms over one shared in-memory buffer: a forward
// complex FFT, a forward real-to-complex FFT (RFFT), and its inverse
// (IRFFT). The engine packs two complex samples into one 4-wide float32
// vector ("dual-complex" layout) and runs a Stockham auto-sort radix-2
// algorithm, dispatching to a shared decimation-in-time butterfly core
// with size-specific bit-reversal and twiddle tables for N in
// {4, 8, 16, 32}.
//
// An Engine owns a fixed 256 KiB buffer partitioned into four segments
// (primary data, Stockham scratch, complex twiddles, RFFT twiddles). Once
// an Engine has been constructed and its twiddle tables precomputed, only
// the size-specialized codelets (complex sizes 4 through 32) allocate, one
// small scratch slice per call. See Engine.Memory for direct byte-offset access to
// the buffer, which is the wire format for every transform.
package fft32
