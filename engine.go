package fft32

// twiddleKind distinguishes which precompute call last validated the
// TWIDDLES/RFFT_TWIDDLES segments, resolving the spec's §9 Open Question
// about implicit twiddle-table validity lifetime: instead of callers
// having to remember to re-precompute after a size change, Engine tracks
// it and returns ErrTwiddlesNotPrepared / ErrTwiddlesSizeMismatch instead
// of silently transforming against a stale table.
type twiddleKind int

const (
	twiddleNone twiddleKind = iota
	twiddleComplex
	twiddleRFFT
)

// Engine owns one 256 KiB linear buffer (spec §3) partitioned into
// PRIMARY, SCRATCH, TWIDDLES, and RFFT_TWIDDLES segments, and the
// transforms that operate on it. One Engine is exclusively owned by its
// caller for the duration of any method call (spec §5). Transforms that
// run a size-specialized codelet (complex size 4, 8, 16 or 32) allocate
// one scratch slice of that many samples per call; no other transform
// path allocates.
type Engine struct {
	buf    []byte
	f32    []float32
	tracer Tracer

	twiddleState twiddleKind
	twiddleSize  uint32 // the M (complex) or N (real) the tables are valid for
}

// NewEngine allocates a fresh, zeroed buffer and returns a ready-to-use
// Engine. Twiddle tables are not yet valid; call PrecomputeTwiddles or
// PrecomputeRFFTTwiddles before FFT/IFFT/RFFT/IRFFT for sizes that need
// them (M <= 4 never needs a table, per spec §4.2).
func NewEngine() *Engine {
	raw := allocAlignedBuffer()
	return &Engine{
		buf:    raw,
		f32:    f32View(raw),
		tracer: noopTracer{},
	}
}

// SetTracer installs a diagnostics hook; pass nil to restore the
// zero-cost default.
func (e *Engine) SetTracer(t Tracer) {
	if t == nil {
		t = noopTracer{}
	}
	e.tracer = t
}

// Memory returns the engine's 256 KiB linear buffer for direct
// byte-offset IO (spec §6's "memory" export). Callers read transform
// inputs/outputs through it directly; the returned slice aliases the
// engine's internal state and must not be retained past the Engine's
// lifetime or resized.
func (e *Engine) Memory() []byte {
	return e.buf
}

func isPowerOfTwo(v uint32) bool {
	return v != 0 && v&(v-1) == 0
}

// PrecomputeTwiddles fills TWIDDLES for an m-sample complex transform.
// Required before FFT/IFFT for m > 4 (sizes m <= 4 need no table); m
// must be a power of two with 4 <= m <= 4096.
func (e *Engine) PrecomputeTwiddles(m uint32) error {
	if !isPowerOfTwo(m) {
		return ErrSizeNotPowerOfTwo
	}
	if m < 4 {
		return ErrSizeTooSmall
	}
	if m > maxComplexSize {
		return ErrSizeOutOfRange
	}
	precomputeComplexTwiddles(e.f32, m)
	e.twiddleState = twiddleComplex
	e.twiddleSize = m
	e.tracer.TracePrecompute("complex", m)
	return nil
}

// PrecomputeRFFTTwiddles fills TWIDDLES for m=n/2 and RFFT_TWIDDLES for an
// n-sample real transform. n must be even, n/2 a power of two with
// 4 <= n/2 <= 4096 (equivalently 8 <= n <= 8192).
func (e *Engine) PrecomputeRFFTTwiddles(n uint32) error {
	if n%2 != 0 {
		return ErrSizeNotPowerOfTwo
	}
	m := n / 2
	if !isPowerOfTwo(m) {
		return ErrSizeNotPowerOfTwo
	}
	if m < 4 {
		return ErrSizeTooSmall
	}
	if m > maxComplexSize {
		return ErrSizeOutOfRange
	}
	precomputeRFFTTwiddles(e.f32, n)
	e.twiddleState = twiddleRFFT
	e.twiddleSize = n
	e.tracer.TracePrecompute("rfft", n)
	return nil
}

func (e *Engine) requireComplexTwiddles(m uint32) error {
	if m <= 4 {
		return nil
	}
	switch e.twiddleState {
	case twiddleComplex:
		if e.twiddleSize != m {
			return ErrTwiddlesSizeMismatch
		}
	case twiddleRFFT:
		if e.twiddleSize/2 != m {
			return ErrTwiddlesSizeMismatch
		}
	default:
		return ErrTwiddlesNotPrepared
	}
	return nil
}

func (e *Engine) requireRFFTTwiddles(n uint32) error {
	if e.twiddleState != twiddleRFFT {
		return ErrTwiddlesNotPrepared
	}
	if e.twiddleSize != n {
		return ErrTwiddlesSizeMismatch
	}
	return nil
}

func validateComplexSize(m uint32) error {
	if !isPowerOfTwo(m) {
		return ErrSizeNotPowerOfTwo
	}
	if m < 4 {
		return ErrSizeTooSmall
	}
	if m > maxComplexSize {
		return ErrSizeOutOfRange
	}
	return nil
}

func validateRealSize(n uint32) error {
	if n%2 != 0 || !isPowerOfTwo(n/2) {
		return ErrSizeNotPowerOfTwo
	}
	if n/2 < 4 {
		return ErrSizeTooSmall
	}
	if n/2 > maxComplexSize {
		return ErrSizeOutOfRange
	}
	return nil
}

// FFT computes the in-place forward complex DFT of the m complex samples
// held in PRIMARY (spec §4.5/§6). m must be a power of two, 4 <= m <=
// 4096, with TWIDDLES already valid for m when m > 4.
func (e *Engine) FFT(m uint32) error {
	if err := validateComplexSize(m); err != nil {
		return err
	}
	if err := e.requireComplexTwiddles(m); err != nil {
		return err
	}
	transformFFT(e.f32, m, e.tracer)
	return nil
}

// IFFT computes (1/m)*conj(FFT(conj(x))) in place over the m complex
// samples held in PRIMARY (spec §4.6).
func (e *Engine) IFFT(m uint32) error {
	if err := validateComplexSize(m); err != nil {
		return err
	}
	if err := e.requireComplexTwiddles(m); err != nil {
		return err
	}
	transformIFFT(e.f32, m, e.tracer)
	return nil
}

// RFFT reads n real f32 values from PRIMARY and writes n/2+1 complex bins
// there (spec §4.5/§6). n must be even with n/2 a valid complex-FFT size
// (4 <= n/2 <= 4096, i.e. 8 <= n <= 8192), with RFFT twiddles already
// precomputed for n.
func (e *Engine) RFFT(n uint32) error {
	if err := validateRealSize(n); err != nil {
		return err
	}
	if err := e.requireRFFTTwiddles(n); err != nil {
		return err
	}
	transformRFFT(e.f32, n, e.tracer)
	return nil
}

// IRFFT is the exact inverse of RFFT: it reads the n/2+1 complex bins
// held in PRIMARY and writes n real f32 outputs there, in order.
func (e *Engine) IRFFT(n uint32) error {
	if err := validateRealSize(n); err != nil {
		return err
	}
	if err := e.requireRFFTTwiddles(n); err != nil {
		return err
	}
	transformIRFFT(e.f32, n, e.tracer)
	return nil
}
