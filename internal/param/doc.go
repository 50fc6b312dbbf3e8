// Package param resolves command-line switches from an explicit argument list.
//
// Each Param has a long spelling (--name) and an optional short spelling (-n).
// Resolve looks the switch up by scanning the whole argument list, so the order
// in which callers resolve parameters, not the order of tokens on the command
// line, decides which parameter claims a token. When a switch is absent the
// caller-supplied fallback Source produces the value instead. Failures are
// returned as errors wrapping ErrMissing, ErrInvalid, or ErrUnavailable.
package param
