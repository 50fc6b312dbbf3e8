package param

import "context"

// Source produces a value for a parameter that is absent from the argument list.
type Source interface {
	Value(ctx context.Context) (string, error)
}

// SourceFunc adapts an ordinary function to a Source.
type SourceFunc func(ctx context.Context) (string, error)

// Value calls f(ctx).
func (f SourceFunc) Value(ctx context.Context) (string, error) { return f(ctx) }

// Literal returns a Source that always yields v.
func Literal(v string) Source {
	return SourceFunc(func(context.Context) (string, error) { return v, nil })
}
