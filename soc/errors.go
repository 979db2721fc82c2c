package soc

import "errors"

// ErrBadTheta indicates a threshold outside the closed interval [0,1] was
// passed to ClassicalSOC. Checked in the option constructor, not at call
// time, so invalid static configuration panics early per the teacher's
// functional-options convention.
var ErrBadTheta = errors.New("soc: theta must be in [0,1]")
