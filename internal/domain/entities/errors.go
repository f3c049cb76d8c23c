package entities

import "errors"

var (
	ErrInvalidIndex      = errors.New("invalid option index")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnsavable         = errors.New("question is not savable")
	ErrOptionLimit       = errors.New("option limit reached")
	ErrLastOption        = errors.New("at least one option must remain")
	ErrInvalidQuestion   = errors.New("invalid question")
)
