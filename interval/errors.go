package interval

import "errors"

var (
	ErrBadSize  = errors.New("interval: bin count must be positive")
	ErrBadEdges = errors.New("interval: edges must be non-decreasing")
)
