package decimate

import "github.com/cwbudde/algo-decimate/dsp/core"

// Sample is the set of sample domains the engine accepts.
type Sample interface {
	~float64 | ~float32 | ~int32
}

// converterFor returns the narrowing applied to each accumulated output
// value: plain conversion for floating domains, floor(v+0.5) saturated to
// the int32 range for the integer domain.
func converterFor[T Sample]() func(float64) T {
	half := 0.5
	if T(half) != 0 {
		return func(v float64) T { return T(v) }
	}
	return func(v float64) T { return T(core.RoundInt32(v)) }
}
