package linalg

import "errors"

var (
	// ErrDimensionMismatch indicates a or b does not match the declared m, n shape.
	ErrDimensionMismatch = errors.New("linalg: a or b length does not match m, n")

	// ErrUnderdetermined indicates fewer equations than unknowns (m < n).
	ErrUnderdetermined = errors.New("linalg: fewer rows than columns")
)
