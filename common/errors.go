package common

import "errors"

var (
	// ErrorInvalidType is returned when an input has the wrong shape,
	// e.g. an empty sample or mismatched slice lengths.
	ErrorInvalidType = errors.New("invalid input type")

	// ErrorInvalidValue is returned for structurally malformed input,
	// e.g. a histogram whose edge count does not match its frequencies.
	ErrorInvalidValue = errors.New("invalid input value")

	// ErrorUnknownMode is returned for an unrecognized enum selector.
	ErrorUnknownMode = errors.New("unknown mode")
)
