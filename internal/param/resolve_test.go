package param

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var nameParam = New("name", "n")

// countingSource records how often it was asked for a value.
type countingSource struct {
	value string
	err   error
	calls int
}

func (c *countingSource) Value(context.Context) (string, error) {
	c.calls++
	return c.value, c.err
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		spec    Spec
		want    Resolved
		wantErr error
	}{
		{
			name: "long spelling with value",
			args: []string{"--name", "foo"},
			spec: Spec{Param: nameParam, RequiresValue: true},
			want: Resolved{Value: "foo", Present: true},
		},
		{
			name: "short spelling with value",
			args: []string{"-n", "foo"},
			spec: Spec{Param: nameParam, RequiresValue: true},
			want: Resolved{Value: "foo", Present: true},
		},
		{
			name: "long spelling wins over earlier short spelling",
			args: []string{"-n", "short", "--name", "long"},
			spec: Spec{Param: nameParam, RequiresValue: true},
			want: Resolved{Value: "long", Present: true},
		},
		{
			name: "first occurrence wins",
			args: []string{"--name", "first", "--name", "second"},
			spec: Spec{Param: nameParam, RequiresValue: true},
			want: Resolved{Value: "first", Present: true},
		},
		{
			name: "unrelated tokens are ignored",
			args: []string{"extra", "--other", "x", "--name", "foo", "trailing"},
			spec: Spec{Param: nameParam, RequiresValue: true},
			want: Resolved{Value: "foo", Present: true},
		},
		{
			name: "presence flag set",
			args: []string{"--verbose"},
			spec: Spec{Param: New("verbose", "v")},
			want: Resolved{Present: true},
		},
		{
			name: "presence flag unset",
			args: []string{"--name", "foo"},
			spec: Spec{Param: New("verbose", "v")},
			want: Resolved{},
		},
		{
			name: "undefined short spelling never matches a lone dash",
			args: []string{"-"},
			spec: Spec{Param: New("no-git", "")},
			want: Resolved{},
		},
		{
			name:    "missing required value without fallback",
			args:    []string{"--dir", "/tmp"},
			spec:    Spec{Param: nameParam, RequiresValue: true},
			wantErr: ErrMissing,
		},
		{
			name:    "trailing flag without value",
			args:    []string{"--dir", "/tmp", "--name"},
			spec:    Spec{Param: nameParam, RequiresValue: true, Fallback: Literal("unused")},
			wantErr: ErrMissing,
		},
		{
			name: "fallback used when absent",
			args: nil,
			spec: Spec{Param: nameParam, RequiresValue: true, Fallback: Literal("fallback")},
			want: Resolved{Value: "fallback"},
		},
		{
			name: "validator applied to argument value",
			args: []string{"--name", "foo"},
			spec: Spec{Param: nameParam, RequiresValue: true, Validate: func(v string) (string, error) {
				return strings.ToUpper(v), nil
			}},
			want: Resolved{Value: "FOO", Present: true},
		},
		{
			name:    "validator rejection",
			args:    []string{"--name", "foo bar"},
			spec:    Spec{Param: nameParam, RequiresValue: true, Validate: NoSpaces("Name")},
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(context.Background(), tt.args, tt.spec)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveFallbackOnlyWhenAbsent(t *testing.T) {
	src := &countingSource{value: "fallback"}
	spec := Spec{Param: nameParam, RequiresValue: true, Fallback: src}

	if _, err := Resolve(context.Background(), []string{"--name", "foo"}, spec); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if src.calls != 0 {
		t.Errorf("fallback called %d times with switch present, want 0", src.calls)
	}

	if _, err := Resolve(context.Background(), nil, spec); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("fallback called %d times with switch absent, want 1", src.calls)
	}
}

func TestResolveFallbackErrorPropagates(t *testing.T) {
	probeErr := fmt.Errorf("%w: sbt not found", ErrUnavailable)
	spec := Spec{Param: New("sbt", "b"), RequiresValue: true, Fallback: &countingSource{err: probeErr}}

	_, err := Resolve(context.Background(), nil, spec)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Resolve() error = %v, want ErrUnavailable", err)
	}
}

func TestResolveDoesNotMutateArgs(t *testing.T) {
	args := []string{"--name", "foo", "-d", "/tmp"}
	before := append([]string(nil), args...)

	_, _ = Resolve(context.Background(), args, Spec{Param: nameParam, RequiresValue: true, Validate: NoSpaces("Name")})
	_, _ = Resolve(context.Background(), args, Spec{Param: New("dir", "d"), RequiresValue: true})

	if diff := cmp.Diff(before, args); diff != "" {
		t.Errorf("args mutated (-before +after):\n%s", diff)
	}
}

func TestLongAndShortAreInterchangeable(t *testing.T) {
	params := []Param{
		New("dir", "d"), New("name", "n"), New("sbt", "b"), New("scala", "s"), New("git-ignore", "i"),
	}
	for _, p := range params {
		t.Run(p.String(), func(t *testing.T) {
			spec := Spec{Param: p, RequiresValue: true}
			long, err := Resolve(context.Background(), []string{p.Long(), "value"}, spec)
			if err != nil {
				t.Fatalf("long: %v", err)
			}
			short, err := Resolve(context.Background(), []string{p.Short(), "value"}, spec)
			if err != nil {
				t.Fatalf("short: %v", err)
			}
			if diff := cmp.Diff(long, short); diff != "" {
				t.Errorf("long and short differ (-long +short):\n%s", diff)
			}
		})
	}
}

func TestNoSpaces(t *testing.T) {
	v := NoSpaces("Name")
	for _, bad := range []string{"", "foo bar", " ", "trailing "} {
		if _, err := v(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("NoSpaces(%q) error = %v, want ErrInvalid", bad, err)
		}
	}
	got, err := v("foo")
	if err != nil || got != "foo" {
		t.Errorf("NoSpaces(\"foo\") = %q, %v; want \"foo\", nil", got, err)
	}
	_, err = v("a b")
	if err == nil || !strings.Contains(err.Error(), "Name cannot be empty nor contain spaces") {
		t.Errorf("unexpected diagnostic: %v", err)
	}
}

func TestParamSpellings(t *testing.T) {
	p := New("no-git", "")
	if p.Long() != "--no-git" {
		t.Errorf("Long() = %q", p.Long())
	}
	if p.Short() != "" || p.HasShort() {
		t.Errorf("Short() = %q, HasShort() = %v; want undefined", p.Short(), p.HasShort())
	}
	if !Present([]string{"x", "--no-git"}, p) {
		t.Error("Present() = false, want true")
	}
}
