package probe

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/scalaproj/scalaproj/internal/ctxlog"
	"github.com/scalaproj/scalaproj/internal/param"
)

// Probe arguments understood by the sbt launcher and the Scala runner.
const (
	SbtVersionFlag   = "--script-version"
	ScalaVersionFlag = "--version"
)

var dottedVersion = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)

// SbtVersion runs "<command> --script-version" and returns its stdout with
// trailing whitespace removed.
func SbtVersion(ctx context.Context, r Runner, command string) (string, error) {
	out, err := run(ctx, r, command, SbtVersionFlag)
	if err != nil {
		return "", err
	}
	ver := strings.TrimRight(out.Stdout, " \t\r\n")
	if ver == "" {
		return "", fmt.Errorf("%w: No sbt was found on system, version cannot be established", param.ErrUnavailable)
	}
	return ver, nil
}

// ScalaVersion runs "<command> --version" and returns the first x.y.z
// version found in its stderr.
func ScalaVersion(ctx context.Context, r Runner, command string) (string, error) {
	out, err := run(ctx, r, command, ScalaVersionFlag)
	if err != nil {
		return "", err
	}
	ver := ExtractVersion(out.Stderr)
	if ver == "" {
		return "", fmt.Errorf("%w: No Scala was found on system, version cannot be established", param.ErrUnavailable)
	}
	return ver, nil
}

// ExtractVersion returns the first three-part dotted number in s, or "".
func ExtractVersion(s string) string {
	return dottedVersion.FindString(s)
}

func run(ctx context.Context, r Runner, command string, args ...string) (*Output, error) {
	log := ctxlog.FromContext(ctx)

	out, err := r.Run(ctx, command, args...)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: Could not find %s executable in current env to set default param", param.ErrUnavailable, command)
		}
		return nil, fmt.Errorf("%w: running %s: %v", param.ErrUnavailable, command, err)
	}
	log.Debug("probe finished", "command", command, "args", args, "exit_code", out.ExitCode)
	return out, nil
}
