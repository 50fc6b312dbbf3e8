package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scalaproj/scalaproj/internal/param"
	"github.com/scalaproj/scalaproj/internal/probe"
	"github.com/spf13/viper"
)

// stubProbe answers version probes by executable name.
type stubProbe map[string]*probe.Output

func (s stubProbe) Run(_ context.Context, name string, _ ...string) (*probe.Output, error) {
	if out, ok := s[name]; ok {
		return out, nil
	}
	return nil, probe.ErrNotFound
}

// setupRoot isolates config under a temp HOME and restores the package
// globals that tests replace.
func setupRoot(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	viper.Reset()

	prevRunner, prevGetwd := probeRunner, getwd
	t.Cleanup(func() {
		probeRunner, getwd = prevRunner, prevGetwd
		versionShort, versionJSON = false, false
		viper.Reset()
	})
}

// executeRoot runs the command tree with a stubbed toolchain and a
// non-interactive stdin. Call setupRoot first.
func executeRoot(t *testing.T, toolchain stubProbe, args ...string) (string, string, error) {
	t.Helper()

	probeRunner = toolchain

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := execute(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func installedToolchain() stubProbe {
	return stubProbe{
		"sbt":   {Stdout: "1.9.0\n"},
		"scala": {Stderr: "Scala code runner version 3.3.1 -- Copyright 2002-2023, LAMP/EPFL\n"},
	}
}

func TestRootScaffoldsProject(t *testing.T) {
	setupRoot(t)
	dest := t.TempDir()

	stdout, _, err := executeRoot(t, nil,
		"--dir", dest, "--name", "demo", "--sbt", "1.9.0", "--scala", "3.3.1", "--git-ignore", "idea")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	root := filepath.Join(dest, "demo")
	for _, f := range []string{"build.sbt", "project/build.properties", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("%s not created: %v", f, err)
		}
	}
	if !strings.Contains(stdout, "Created sbt project at "+root+"/") {
		t.Errorf("summary missing:\n%s", stdout)
	}
	if !strings.Contains(stdout, "  src/main/scala/") {
		t.Errorf("summary should list directories:\n%s", stdout)
	}
}

func TestRootUsesProbesAndWorkingDir(t *testing.T) {
	setupRoot(t)
	dest := t.TempDir()
	getwd = func() (string, error) { return dest, nil }

	_, stderr, err := executeRoot(t, installedToolchain(), "-n", "demo", "--no-git")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "demo", "build.sbt"))
	if err != nil {
		t.Fatalf("reading build.sbt: %v", err)
	}
	if !strings.Contains(string(data), `scalaVersion := "3.3.1"`) {
		t.Errorf("build.sbt should use the probed Scala version:\n%s", data)
	}
	for _, want := range []string{
		"Using current working dir " + dest,
		"Using system sbt version (1.9.0)",
		"Using system Scala version (3.3.1)",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if _, err := os.Stat(filepath.Join(dest, "demo", ".gitignore")); !os.IsNotExist(err) {
		t.Error(".gitignore should not be written with --no-git")
	}
}

func TestRootValuesNamingSubcommands(t *testing.T) {
	for _, name := range []string{"doctor", "version", "templates", "config", "help", "completion"} {
		t.Run(name, func(t *testing.T) {
			setupRoot(t)
			dest := t.TempDir()

			_, _, err := executeRoot(t, installedToolchain(),
				"--no-git", "--name", name, "--dir", dest, "--sbt", "1.9.0", "--scala", "3.3.1")
			if err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if _, err := os.Stat(filepath.Join(dest, name, "build.sbt")); err != nil {
				t.Errorf("project %s not created: %v", name, err)
			}
		})
	}
}

func TestRootDirValueNamingSubcommand(t *testing.T) {
	setupRoot(t)
	base := t.TempDir()
	t.Chdir(base)

	_, _, err := executeRoot(t, nil, "-v", "--dir", "version", "-n", "demo", "-b", "1.9.0", "-s", "3.3.1", "--no-git")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "version", "demo", "build.sbt")); err != nil {
		t.Errorf("project not created under relative dir: %v", err)
	}
}

func TestIsSubcommand(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"doctor", true},
		{"version", true},
		{"config", true},
		{"templates", true},
		{"help", true},
		{"completion", true},
		{"__complete", true},
		{"--name", false},
		{"demo", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isSubcommand(tt.arg); got != tt.want {
			t.Errorf("isSubcommand(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestRootMissingNameNonInteractive(t *testing.T) {
	setupRoot(t)
	_, _, err := executeRoot(t, installedToolchain(), "--dir", t.TempDir())
	if !errors.Is(err, param.ErrMissing) {
		t.Fatalf("Execute() error = %v, want ErrMissing", err)
	}
	if got := ExitCode(err); got != -1 {
		t.Errorf("ExitCode() = %d, want -1", got)
	}
}

func TestRootVerboseLogging(t *testing.T) {
	setupRoot(t)
	dest := t.TempDir()

	_, stderr, err := executeRoot(t, nil,
		"-v", "-d", dest, "-n", "demo", "-b", "1.9.0", "-s", "3.3.1", "--no-git")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"resolved parameter", "flag=--name", "wrote file"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("verbose log missing %q:\n%s", want, stderr)
		}
	}
}

func TestRootHelp(t *testing.T) {
	setupRoot(t)
	dest := t.TempDir()

	stdout, _, err := executeRoot(t, nil, "--help", "-d", dest, "-n", "demo")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(stdout, "--git-ignore <template>") {
		t.Errorf("help should describe flags:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(dest, "demo")); !os.IsNotExist(err) {
		t.Error("--help must not create a project")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"missing", fmt.Errorf("%w: x", param.ErrMissing), -1},
		{"invalid", fmt.Errorf("wrapped: %w", fmt.Errorf("%w: x", param.ErrInvalid)), -1},
		{"unavailable", probe.ErrNotFound, -1},
		{"filesystem", errors.New("creating directory: permission denied"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
