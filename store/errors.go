package store

import "errors"

var (
	ErrWrongKind   = errors.New("store: record kind mismatch")
	ErrUnknownType = errors.New("store: unknown backend type")
)
