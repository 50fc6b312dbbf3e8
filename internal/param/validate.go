package param

import (
	"fmt"
	"strings"
)

// NoSpaces returns a Validator rejecting empty values and values containing a
// space. what names the value in the diagnostic, e.g. "Path".
func NoSpaces(what string) Validator {
	return func(v string) (string, error) {
		if v == "" || strings.Contains(v, " ") {
			return "", fmt.Errorf("%w: %s cannot be empty nor contain spaces", ErrInvalid, what)
		}
		return v, nil
	}
}
