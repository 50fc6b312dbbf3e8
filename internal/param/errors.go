package param

import "errors"

var (
	// ErrMissing reports a required value that is absent and has no fallback.
	ErrMissing = errors.New("missing required parameter")

	// ErrInvalid reports a value rejected by a validator.
	ErrInvalid = errors.New("invalid parameter value")

	// ErrUnavailable reports a fallback that could not produce a value, such as
	// a version probe whose executable is missing.
	ErrUnavailable = errors.New("default value unavailable")
)
