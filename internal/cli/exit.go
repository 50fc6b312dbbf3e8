package cli

import (
	"errors"

	"github.com/scalaproj/scalaproj/internal/param"
)

// ExitCode maps an error returned by Execute to a process exit status.
// Parameter failures exit with -1; anything else exits with 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, param.ErrMissing),
		errors.Is(err, param.ErrInvalid),
		errors.Is(err, param.ErrUnavailable):
		return -1
	default:
		return 1
	}
}
