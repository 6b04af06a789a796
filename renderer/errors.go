package renderer

import "errors"

var (
	ErrContextNotDefined = errors.New("renderer: no render context defined")
	ErrMediumNotDefined  = errors.New("renderer: no medium defined")
	ErrInvalidDimensions = errors.New("renderer: frame dimensions must be non-zero")
	ErrInvalidSampleRate = errors.New("renderer: samples per pixel must be non-zero")
)
