package param

import "slices"

// Param is a command-line switch with a long and an optional short spelling.
type Param struct {
	long  string
	short string
}

// New returns a Param matching "--<long>" and, when short is non-empty,
// "-<short>". An empty short spelling never matches.
func New(long, short string) Param {
	return Param{long: long, short: short}
}

// Long returns the long spelling including its dashes, e.g. "--name".
func (p Param) Long() string { return "--" + p.long }

// Short returns the short spelling including its dash, or "" when undefined.
func (p Param) Short() string {
	if p.short == "" {
		return ""
	}
	return "-" + p.short
}

// HasShort reports whether a short spelling is defined.
func (p Param) HasShort() bool { return p.short != "" }

// String returns the long spelling.
func (p Param) String() string { return p.Long() }

// index returns the position of the first occurrence of p in args, trying the
// long spelling before the short one, or -1 when neither appears.
func (p Param) index(args []string) int {
	if i := slices.Index(args, p.Long()); i >= 0 {
		return i
	}
	if p.HasShort() {
		return slices.Index(args, p.Short())
	}
	return -1
}

// Present reports whether p appears anywhere in args.
func Present(args []string, p Param) bool {
	return p.index(args) >= 0
}
