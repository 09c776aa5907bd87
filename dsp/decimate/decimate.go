package decimate

import "fmt"

// OutputLen returns the number of samples produced when npts samples are
// decimated by factor: (npts-1)/factor + 1, or 0 for empty input.
func OutputLen(npts, factor int) int {
	if npts <= 0 || factor <= 0 {
		return 0
	}
	return (npts-1)/factor + 1
}

// Decimate low-pass filters samples[:npts] and keeps every factor-th
// filtered sample. Output sample k is centered on input sample k*factor and
// samples outside the input read as zero.
//
// The result overwrites samples[:n] where n = OutputLen(npts, factor) and n
// is returned. Entries from n up to npts are left in an unspecified state.
// Values are accumulated in float64 and narrowed to T; int32 output is
// rounded with floor(v+0.5) and saturated.
//
// Without options the built-in filter for factor is used and factor must be
// within MinFactor..MaxFactor. On error samples is not modified.
func Decimate[T Sample](samples []T, npts, factor int, opts ...Option) (int, error) {
	if npts < 0 || npts > len(samples) {
		return 0, fmt.Errorf("%w: %d of %d", ErrInvalidLength, npts, len(samples))
	}

	h, sym, err := applyOptions(opts).resolve(factor)
	if err != nil {
		return 0, err
	}

	if npts == 0 {
		return 0, nil
	}

	nch := len(h) - 1
	nout := OutputLen(npts, factor)
	narrow := converterFor[T]()

	w := newWindow(samples[:npts], nch, factor)
	defer w.release()

	w.prime()

	out := 0
	step := func(checked bool) {
		w.compact()
		w.load(out*factor, checked)
		samples[out] = narrow(w.convolve(h, sym))
		out++
	}

	// Short filters with large factors read before the first sample.
	for out < nout && out*factor+nch-w.fresh+1 < 0 {
		step(true)
	}

	// Steady state: every new sample lies inside the input.
	for out < nout && out*factor+nch < npts {
		step(false)
	}

	// Drain: the window runs off the end of the input.
	for out < nout {
		step(true)
	}

	return nout, nil
}

// Apply decimates all of samples in place and returns the decimated prefix.
func Apply[T Sample](samples []T, factor int, opts ...Option) ([]T, error) {
	n, err := Decimate(samples, len(samples), factor, opts...)
	if err != nil {
		return samples, err
	}
	return samples[:n], nil
}
