// Package probe asks installed toolchain executables for their versions. The
// Runner interface abstracts process execution so callers can substitute a
// stub; ExecRunner is the os/exec implementation used by the CLI.
package probe
