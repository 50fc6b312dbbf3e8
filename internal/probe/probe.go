package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/scalaproj/scalaproj/internal/param"
)

// ErrNotFound is returned when the requested executable is not on PATH.
var ErrNotFound = fmt.Errorf("%w: executable not found", param.ErrUnavailable)

// Runner runs an executable and captures its output.
type Runner interface {
	// Run executes name with args. A non-zero exit status is reported in
	// Output.ExitCode, not as an error. A missing executable yields an error
	// wrapping ErrNotFound.
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// Output captures the result of a probe execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExecRunner runs probes as child processes.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	return output, nil
}
