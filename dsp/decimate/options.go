package decimate

import "fmt"

type config struct {
	filter    FilterSpec
	hasFilter bool
}

// Option configures a decimation call.
type Option func(*config)

// WithFilter replaces the built-in filter for the call. Any factor >= 2 is
// accepted together with an explicit filter.
func WithFilter(spec FilterSpec) Option {
	return func(cfg *config) {
		cfg.filter = spec
		cfg.hasFilter = true
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// resolve picks the filter for factor and checks that its working window
// can be sized. Built-in coefficients are shared and must not be modified.
func (c config) resolve(factor int) ([]float64, Symmetry, error) {
	if !c.hasFilter {
		h, ok := builtin(factor)
		if !ok {
			_, err := Lookup(factor)
			return nil, 0, err
		}
		return h, SymmetryEven, nil
	}
	if factor < 2 {
		return nil, 0, ErrInvalidFactor
	}
	if err := c.filter.Validate(); err != nil {
		return nil, 0, err
	}
	if n := len(c.filter.Coefficients); n > MaxHalfLength {
		return nil, 0, fmt.Errorf("%w: half length %d exceeds %d", ErrAllocation, n, MaxHalfLength)
	}
	return c.filter.Coefficients, c.filter.Symmetry, nil
}
