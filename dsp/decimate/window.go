package decimate

import "github.com/cwbudde/algo-decimate/dsp/buffer"

// scratch recycles working windows between calls.
var scratch = buffer.NewPool()

// window is the sliding set of input samples around the current output
// center. Slot j holds input sample center-nch+j; samples outside [0, npts)
// read as zero.
//
// Each step refreshes the last fresh slots. When the write cursor has
// reached the end of buf the retained overlap is first compacted down to
// the start of buf.
type window[T Sample] struct {
	buf    []float64
	src    []T
	nch    int
	fresh  int
	cursor int
	pooled *buffer.Buffer
}

func newWindow[T Sample](src []T, nch, factor int) *window[T] {
	n := 2*nch + 1
	b := scratch.Get(n)
	return &window[T]{
		buf:    b.Samples(),
		src:    src,
		nch:    nch,
		fresh:  min(factor, n),
		pooled: b,
	}
}

func (w *window[T]) release() {
	scratch.Put(w.pooled)
	w.pooled = nil
	w.buf = nil
	w.src = nil
}

// at reads input sample i with zero padding on both ends.
func (w *window[T]) at(i int) float64 {
	if i < 0 || i >= len(w.src) {
		return 0
	}
	return float64(w.src[i])
}

// prime fills everything but the slots refreshed by the first step, so that
// the first step centers the window on input sample 0.
func (w *window[T]) prime() {
	w.cursor = len(w.buf) - w.fresh
	for j := 0; j < w.cursor; j++ {
		w.buf[j] = w.at(j - w.nch)
	}
}

// compact drops the oldest fresh samples once the cursor hits the end.
func (w *window[T]) compact() {
	if w.cursor != len(w.buf) {
		return
	}
	copy(w.buf, w.buf[w.fresh:])
	w.cursor -= w.fresh
}

// load fills the open tail of the window for the given center. With
// checked unset the caller guarantees every read lies inside src.
func (w *window[T]) load(center int, checked bool) {
	base := center - w.nch
	if checked {
		for j := w.cursor; j < len(w.buf); j++ {
			w.buf[j] = w.at(base + j)
		}
	} else {
		src := w.src[base+w.cursor : base+len(w.buf)]
		dst := w.buf[w.cursor:]
		for j, v := range src {
			dst[j] = float64(v)
		}
	}
	w.cursor = len(w.buf)
}

// convolve returns the centered weighted sum
//
//	h[0]*w[c] + sum_{i=1}^{nch} h[i]*(w[c+i] + sign*w[c-i])
//
// accumulated in the order of the index. Products are rounded explicitly so
// results do not depend on FMA availability.
func (w *window[T]) convolve(h []float64, sym Symmetry) float64 {
	c := w.nch
	b := w.buf
	_ = b[2*c]
	_ = h[c]
	acc := float64(h[0] * b[c])
	if sym == SymmetryOdd {
		for i := 1; i <= c; i++ {
			acc += float64(h[i] * (b[c+i] - b[c-i]))
		}
		return acc
	}
	for i := 1; i <= c; i++ {
		acc += float64(h[i] * (b[c+i] + b[c-i]))
	}
	return acc
}
