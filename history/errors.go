package history

import "errors"

var (
	ErrBadShape     = errors.New("history: invalid shape")
	ErrNoBooker     = errors.New("history: no booker")
	ErrBadLabel     = errors.New("history: malformed shape label")
	ErrIncompatible = errors.New("history: incompatible shapes")
	ErrNoAxis       = errors.New("history: no axis to reduce")
)
