package fft32

// Tracer is an optional diagnostics hook for the transform pipeline. The
// zero-overhead default is noopTracer; callers that want visibility into
// stage timing or codelet dispatch choices install their own via
// Engine.SetTracer. No implementation in this package ever logs to
// stdout/stderr directly — that decision belongs to the Tracer the caller
// installs.
type Tracer interface {
	// TracePrecompute fires once per PrecomputeTwiddles/PrecomputeRFFTTwiddles
	// call, reporting the size the table was (re)built for.
	TracePrecompute(kind string, size uint32)

	// TraceStage fires once per Stockham stage in stockham_general, giving
	// the group count, pair count, and which sub-path (dual/single)
	// handled it.
	TraceStage(m uint32, groupCount, pairCount int, subPath string)

	// TraceCodelet fires once per dispatch into a size-specialized codelet,
	// or with size 0 when the generic engine was chosen instead.
	TraceCodelet(size uint32)
}

// noopTracer is the zero-cost default Tracer; every method inlines to
// nothing.
type noopTracer struct{}

func (noopTracer) TracePrecompute(string, uint32)      {}
func (noopTracer) TraceStage(uint32, int, int, string) {}
func (noopTracer) TraceCodelet(uint32)                 {}
