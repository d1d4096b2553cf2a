package match

import "errors"

// Configuration errors returned when a session cannot be built.
var (
	ErrNoPairs   = errors.New("no card pairs")
	ErrEmptyFace = errors.New("card pair has an empty face")
)
