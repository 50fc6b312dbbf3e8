package param

import (
	"context"
	"fmt"
)

// Validator accepts a raw value and returns the value to use, or an error
// wrapping ErrInvalid.
type Validator func(string) (string, error)

// Spec describes one resolution.
type Spec struct {
	Param Param
	// RequiresValue makes the argument following the switch its value.
	RequiresValue bool
	// Validate is applied only to values taken from the argument list.
	Validate Validator
	// Fallback is consulted only when the switch is absent.
	Fallback Source
}

// Resolved is the outcome of a successful resolution.
type Resolved struct {
	Value string
	// Present is true when the switch appeared in the argument list.
	Present bool
}

// Resolve looks spec.Param up in args. args is never modified.
//
// A switch that requires a value but is the last argument yields ErrMissing
// without consulting the fallback.
func Resolve(ctx context.Context, args []string, spec Spec) (Resolved, error) {
	i := spec.Param.index(args)
	if i >= 0 {
		if !spec.RequiresValue {
			return Resolved{Present: true}, nil
		}
		if i+1 >= len(args) {
			return Resolved{}, fmt.Errorf("%w: flag %s requires a value", ErrMissing, args[i])
		}
		raw := args[i+1]
		if spec.Validate == nil {
			return Resolved{Value: raw, Present: true}, nil
		}
		v, err := spec.Validate(raw)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Value: v, Present: true}, nil
	}

	if spec.Fallback != nil {
		v, err := spec.Fallback.Value(ctx)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Value: v}, nil
	}
	if spec.RequiresValue {
		return Resolved{}, fmt.Errorf("%w: no default value provided for missing value-required parameter (%s)", ErrMissing, spec.Param.Long())
	}
	return Resolved{}, nil
}
