package fft32

// transformFFT dispatches the in-place forward complex DFT of m samples
// held in PRIMARY to a size-specialized codelet for m in {4, 8, 16, 32},
// or to the generic Stockham engine otherwise (spec §4.5 dispatcher).
func transformFFT(buf []float32, m uint32, tracer Tracer) {
	switch m {
	case 4:
		tracer.TraceCodelet(4)
		codelet4(buf[primaryF32Offset : primaryF32Offset+primaryF32Len])
	case 8:
		tracer.TraceCodelet(8)
		codelet8DIT(buf[primaryF32Offset : primaryF32Offset+primaryF32Len])
	case 16:
		tracer.TraceCodelet(16)
		codelet16DIT(buf[primaryF32Offset : primaryF32Offset+primaryF32Len])
	case 32:
		tracer.TraceCodelet(32)
		codelet32DIT(buf[primaryF32Offset : primaryF32Offset+primaryF32Len])
	default:
		tracer.TraceCodelet(0)
		stockhamGeneral(buf, m, tracer)
	}
}
