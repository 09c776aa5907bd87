// Package decimate provides integer-factor downsampling with anti-alias
// FIR filtering.
//
// A call filters a sample buffer with a centered, linear-phase FIR low-pass
// and keeps every factor-th output, writing the result over the front of the
// same buffer:
//
//	n, err := decimate.Decimate(samples, len(samples), 4)
//	samples = samples[:n]
//
// Output sample k is centered on input sample k*factor, so the decimated
// series starts at the same time as the input. Samples past either end of
// the input are treated as zero. The output length is (npts-1)/factor + 1.
//
// Built-in filters exist for factors 2 through 7 (see [Lookup]). Larger
// reductions are expressed as a cascade, e.g. 5 then 4 for 20x ([Cascade]).
// Any other factor needs an explicit filter passed with [WithFilter].
//
// The engine is generic over float64, float32 and int32 samples. Filtering
// always accumulates in float64; int32 results are rounded with floor(v+0.5)
// and saturated.
//
// Calls share no mutable state and may run concurrently on distinct
// buffers.
package decimate
