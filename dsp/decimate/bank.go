package decimate

import (
	"fmt"
	"strconv"
)

const (
	// MinFactor is the smallest decimation factor with a built-in filter.
	MinFactor = 2
	// MaxFactor is the largest decimation factor with a built-in filter.
	MaxFactor = 7

	// MaxHalfLength bounds the half length of caller-supplied filters. The
	// working window of a call holds 2*MaxHalfLength-1 samples.
	MaxHalfLength = 1 << 22
)

// Symmetry selects how the half filter is mirrored around the center tap.
type Symmetry int

const (
	// SymmetryEven mirrors the half filter unchanged (linear-phase low-pass).
	SymmetryEven Symmetry = iota
	// SymmetryOdd mirrors the half filter with negated sign.
	SymmetryOdd
)

// String returns the lower-case symmetry name.
func (s Symmetry) String() string {
	switch s {
	case SymmetryEven:
		return "even"
	case SymmetryOdd:
		return "odd"
	default:
		return "Symmetry(" + strconv.Itoa(int(s)) + ")"
	}
}

// sign is the factor applied to the mirrored half.
func (s Symmetry) sign() float64 {
	if s == SymmetryOdd {
		return -1
	}
	return 1
}

// FilterSpec describes a centered FIR filter by one half of its kernel.
//
// Coefficients[0] is the center tap; Coefficients[i] applies to the samples
// i positions before and after the center. The realized kernel therefore has
// 2*len(Coefficients)-1 taps.
type FilterSpec struct {
	Coefficients []float64
	Symmetry     Symmetry
}

// HalfLength returns the number of taps on each side of the center tap.
func (f FilterSpec) HalfLength() int {
	if len(f.Coefficients) == 0 {
		return 0
	}
	return len(f.Coefficients) - 1
}

// Len returns the length of the realized kernel, 0 for an empty spec.
func (f FilterSpec) Len() int {
	if len(f.Coefficients) == 0 {
		return 0
	}
	return 2*f.HalfLength() + 1
}

// Validate reports whether f describes a usable kernel. The size of the
// working window is checked separately when a decimation call is set up.
func (f FilterSpec) Validate() error {
	if len(f.Coefficients) == 0 {
		return fmt.Errorf("%w: no coefficients", ErrInvalidFilter)
	}
	if f.Symmetry != SymmetryEven && f.Symmetry != SymmetryOdd {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, f.Symmetry)
	}
	return nil
}

// Kernel returns the full realized kernel of length Len().
//
//	k[nch] = h[0], k[nch+i] = h[i], k[nch-i] = sign*h[i]
func (f FilterSpec) Kernel() []float64 {
	n := f.Len()
	if n == 0 {
		return nil
	}
	nch := f.HalfLength()
	sign := f.Symmetry.sign()
	k := make([]float64, n)
	k[nch] = f.Coefficients[0]
	for i := 1; i <= nch; i++ {
		k[nch+i] = f.Coefficients[i]
		k[nch-i] = sign * f.Coefficients[i]
	}
	return k
}

// DCGain returns the response of the realized kernel at 0 Hz.
// Odd filters always have zero DC gain apart from the center tap.
func (f FilterSpec) DCGain() float64 {
	if len(f.Coefficients) == 0 {
		return 0
	}
	g := f.Coefficients[0]
	if f.Symmetry == SymmetryOdd {
		return g
	}
	for _, c := range f.Coefficients[1:] {
		g += 2 * c
	}
	return g
}

// Lookup returns the built-in anti-alias filter for factor.
//
// Only factors MinFactor..MaxFactor have built-in filters; any other value
// yields an error wrapping ErrUnsupportedFactor. The returned coefficients
// are a copy and may be modified by the caller.
func Lookup(factor int) (FilterSpec, error) {
	h, ok := builtin(factor)
	if !ok {
		return FilterSpec{}, fmt.Errorf("%w: %d (built-in filters cover %d-%d)",
			ErrUnsupportedFactor, factor, MinFactor, MaxFactor)
	}
	c := make([]float64, len(h))
	copy(c, h)
	return FilterSpec{Coefficients: c, Symmetry: SymmetryEven}, nil
}

// SupportedFactors lists the factors accepted by Lookup in ascending order.
func SupportedFactors() []int {
	out := make([]int, 0, MaxFactor-MinFactor+1)
	for f := MinFactor; f <= MaxFactor; f++ {
		out = append(out, f)
	}
	return out
}

// builtin returns the shared read-only table for factor. Callers inside the
// package must not modify it.
func builtin(factor int) ([]float64, bool) {
	switch factor {
	case 2:
		return dec2FIR[:], true
	case 3:
		return dec3FIR[:], true
	case 4:
		return dec4FIR[:], true
	case 5:
		return dec5FIR[:], true
	case 6:
		return dec6FIR[:], true
	case 7:
		return dec7FIR[:], true
	default:
		return nil, false
	}
}
