package decimate

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-decimate/dsp/core"
)

// DefaultFFTSize is the transform length used by Analyze.
const DefaultFFTSize = 8192

// Band edges used by Analyze, in cycles per input sample times the factor.
const (
	passbandEdge = 0.35
	stopbandEdge = 0.6
)

// Analysis summarizes the anti-alias quality of a filter for one factor.
type Analysis struct {
	Factor                int
	Taps                  int
	DCGain                float64
	PassbandRippleDB      float64 // max |20*log10|H|| over [0, 0.35/factor]
	StopbandAttenuationDB float64 // min -20*log10|H| over [0.6/factor, 0.5]
}

// FrequencyResponse returns |H| of the realized kernel of spec at n/2+1
// equally spaced frequencies from 0 to half the sample rate. n must be a
// power of two no shorter than the kernel.
func FrequencyResponse(spec FilterSpec, n int) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if n < spec.Len() || n&(n-1) != 0 {
		return nil, fmt.Errorf("decimate: fft size %d must be a power of two >= %d", n, spec.Len())
	}
	kernel := spec.Kernel()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("decimate: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range kernel {
		in[i] = complex(v, 0)
	}
	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("decimate: failed to compute kernel FFT: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// Analyze measures spec as an anti-alias filter for decimation by factor.
func Analyze(spec FilterSpec, factor int) (Analysis, error) {
	if factor < 2 {
		return Analysis{}, ErrInvalidFactor
	}
	n := DefaultFFTSize
	for n < spec.Len() {
		n <<= 1
	}
	mag, err := FrequencyResponse(spec, n)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Factor: factor,
		Taps:   spec.Len(),
		DCGain: spec.DCGain(),
	}

	pass := passbandEdge / float64(factor)
	stop := stopbandEdge / float64(factor)
	peak := 0.0
	for k, m := range mag {
		f := float64(k) / float64(n)
		if f <= pass {
			if m == 0 {
				return Analysis{}, errors.New("decimate: passband response is zero")
			}
			a.PassbandRippleDB = math.Max(a.PassbandRippleDB, math.Abs(core.LinearToDB(m)))
		}
		if f >= stop {
			peak = math.Max(peak, m)
		}
	}
	a.StopbandAttenuationDB = -core.LinearToDB(peak)
	return a, nil
}
