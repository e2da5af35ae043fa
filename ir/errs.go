package ir

import "errors"

var (
	ErrNotScalar   = errors.New("node is not a scalar")
	ErrNotSequence = errors.New("node is not a sequence")
	ErrNotMapping  = errors.New("node is not a mapping")

	ErrBadValue = errors.New("unsupported value")
)
