package decimate

import "errors"

var (
	// ErrUnsupportedFactor indicates a factor with no built-in filter.
	ErrUnsupportedFactor = errors.New("decimate: unsupported decimation factor")
	// ErrInvalidFactor indicates a factor below 2 used with an explicit filter.
	ErrInvalidFactor = errors.New("decimate: decimation factor must be >= 2")
	// ErrInvalidFilter indicates an explicit filter that cannot be applied.
	ErrInvalidFilter = errors.New("decimate: invalid filter")
	// ErrInvalidLength indicates a sample count outside [0, len(samples)].
	ErrInvalidLength = errors.New("decimate: invalid sample count")
	// ErrAllocation indicates the working window could not be obtained.
	ErrAllocation = errors.New("decimate: cannot allocate working window")
	// ErrTooManyStages indicates a cascade longer than MaxStages.
	ErrTooManyStages = errors.New("decimate: too many decimation stages")
	// ErrInvalidRate indicates a trace sample rate that is not positive.
	ErrInvalidRate = errors.New("decimate: invalid sample rate")
)
