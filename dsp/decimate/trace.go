package decimate

import (
	"fmt"
	"math"
	"time"
)

// Trace is a uniformly sampled series with the metadata that decimation
// has to keep consistent.
type Trace[T Sample] struct {
	Samples    []T
	SampleRate float64 // Hz
	Start      time.Time
}

// EndTime returns the time of the last sample. Empty traces and traces
// without a valid rate end at Start.
func (t *Trace[T]) EndTime() time.Time {
	if len(t.Samples) < 2 || !validRate(t.SampleRate) {
		return t.Start
	}
	span := float64(len(t.Samples)-1) / t.SampleRate
	return t.Start.Add(time.Duration(math.Round(span * float64(time.Second))))
}

// Decimate decimates the trace in place by factor, truncates Samples to
// the new length and divides SampleRate by factor. Start is unchanged since
// the first output sample is centered on the first input sample.
func (t *Trace[T]) Decimate(factor int, opts ...Option) error {
	if !validRate(t.SampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidRate, t.SampleRate)
	}

	out, err := Apply(t.Samples, factor, opts...)
	if err != nil {
		return err
	}

	t.Samples = out
	t.SampleRate /= float64(factor)
	return nil
}

// DecimateCascade applies the built-in filters for each factor in turn.
// All factors are checked before the first stage, so on a factor error the
// trace is unchanged.
func (t *Trace[T]) DecimateCascade(factors []int) error {
	if !validRate(t.SampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidRate, t.SampleRate)
	}
	for _, f := range factors {
		if _, err := Lookup(f); err != nil {
			return err
		}
	}
	for i, f := range factors {
		if err := t.Decimate(f); err != nil {
			return fmt.Errorf("stage %d (factor %d): %w", i+1, f, err)
		}
	}
	return nil
}

func validRate(r float64) bool {
	return r > 0 && !math.IsNaN(r) && !math.IsInf(r, 0)
}
