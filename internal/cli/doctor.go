package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/scalaproj/scalaproj/internal/config"
	"github.com/scalaproj/scalaproj/internal/probe"
	"github.com/spf13/cobra"
)

// Oldest toolchain versions the generated project layout is known to work with.
const (
	minSbtVersion   = "1.0.0"
	minScalaVersion = "2.12.0"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the installed sbt and Scala toolchain",
	Long: `Run the same version probes used to default --sbt and --scala, and report
whether each tool was found and meets the supported minimum version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		failed := runToolchainCheck(cmd.Context(), cmd.OutOrStdout(), probeRunner)
		if failed > 0 {
			return fmt.Errorf("%d toolchain check(s) failed", failed)
		}
		return nil
	},
}

type toolCheck struct {
	tool    string
	command string
	minimum string
	probe   func(ctx context.Context, r probe.Runner, command string) (string, error)
}

// runToolchainCheck prints one line per tool and returns how many were not found.
func runToolchainCheck(ctx context.Context, w io.Writer, r probe.Runner) int {
	checks := []toolCheck{
		{"sbt", config.SbtCommand(), minSbtVersion, probe.SbtVersion},
		{"Scala", config.ScalaCommand(), minScalaVersion, probe.ScalaVersion},
	}

	fmt.Fprintln(w, "Toolchain check:")
	failed := 0
	for _, c := range checks {
		ver, err := c.probe(ctx, r, c.command)
		if err != nil {
			fmt.Fprintf(w, "  [MISS] %s (%s): %v\n", c.tool, c.command, err)
			failed++
			continue
		}

		ok, err := probe.AtLeast(ver, c.minimum)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [WARN] %s %s (%s): cannot compare version: %v\n", c.tool, ver, c.command, err)
		case !ok:
			fmt.Fprintf(w, "  [WARN] %s %s (%s) is older than the supported minimum %s\n", c.tool, ver, c.command, c.minimum)
		default:
			fmt.Fprintf(w, "  [ OK ] %s %s (%s)\n", c.tool, ver, c.command)
		}
	}
	return failed
}
