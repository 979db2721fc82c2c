package amgsetup

import "errors"

// Sentinel errors Setup can return. Each is wrapped with a correlation id
// and a stack trace via github.com/pkg/errors at the point of return, so
// errors.Is still matches the sentinel underneath the wrap.
var (
	// ErrNilMatrix indicates Setup was called with a nil matrix.
	ErrNilMatrix = errors.New("amgsetup: matrix is nil")

	// ErrEmptyMatrix indicates Setup was called with a zero-row matrix.
	ErrEmptyMatrix = errors.New("amgsetup: matrix has no rows")

	// ErrBadTheta indicates Theta is outside the closed interval [0,1].
	ErrBadTheta = errors.New("amgsetup: theta must be in [0,1]")

	// ErrUnknownSplitAlgorithm indicates an unrecognized SplitAlgorithm value.
	ErrUnknownSplitAlgorithm = errors.New("amgsetup: unknown split algorithm")

	// ErrUnknownInterpMethod indicates an unrecognized InterpMethod value.
	ErrUnknownInterpMethod = errors.New("amgsetup: unknown interpolation method")
)
