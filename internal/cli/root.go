package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scalaproj/scalaproj/internal/branding"
	"github.com/scalaproj/scalaproj/internal/config"
	"github.com/scalaproj/scalaproj/internal/ctxlog"
	"github.com/scalaproj/scalaproj/internal/ignore"
	"github.com/scalaproj/scalaproj/internal/param"
	"github.com/scalaproj/scalaproj/internal/probe"
	"github.com/scalaproj/scalaproj/internal/project"
	"github.com/scalaproj/scalaproj/internal/prompt"
	"github.com/scalaproj/scalaproj/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Presence-only switches handled by the root command itself.
var (
	verboseParam = param.New("verbose", "v")
	helpParam    = param.New("help", "h")
)

// probeRunner runs the sbt and Scala version probes. Tests replace it.
var probeRunner probe.Runner = probe.ExecRunner{}

// getwd is the working-directory lookup behind the --dir fallback.
var getwd = os.Getwd

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [flags]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new sbt project: the src/main and src/test trees,
build.sbt, project/build.properties, and optionally a .gitignore.

Flags:
  -d, --dir <path>             Parent directory (default: current working directory)
  -n, --name <name>            Project name (prompted for when interactive)
  -b, --sbt <version>          sbt version (default: installed sbt)
  -s, --scala <version>        Scala version (default: installed Scala)
  -i, --git-ignore <template>  .gitignore template (see '` + branding.CLIName() + ` templates')
      --no-git                 Do not write a .gitignore
  -v, --verbose                Log each step to stderr
  -h, --help                   Show this help`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runScaffold,
}

func runScaffold(cmd *cobra.Command, args []string) error {
	if param.Present(args, helpParam) {
		return cmd.Help()
	}

	logger := ctxlog.New(cmd.ErrOrStderr(), param.Present(args, verboseParam))
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	config.Load()

	catalog, err := ignore.Builtin()
	if err != nil {
		return fmt.Errorf("loading gitignore templates: %w", err)
	}

	resolver := &project.Resolver{
		Terminal:     newTerminal(cmd.InOrStdin(), cmd.ErrOrStderr()),
		Runner:       probeRunner,
		Catalog:      catalog,
		SbtCommand:   config.SbtCommand(),
		ScalaCommand: config.ScalaCommand(),
		Getwd:        getwd,
		Notices:      cmd.ErrOrStderr(),
	}

	opts, err := resolver.Resolve(ctx, args)
	if err != nil {
		return err
	}
	logger.Debug("creating project", "path", opts.Path(), "gitignore", opts.GitIgnore)

	result, err := project.Create(ctx, opts, catalog)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// newTerminal prompts on w and reads from r. It is interactive only when r is
// a terminal.
func newTerminal(r io.Reader, w io.Writer) *prompt.Terminal {
	f, ok := r.(*os.File)
	return prompt.New(r, w, ok && prompt.IsTerminal(f))
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Created sbt project at %s/\n", result.OutputDir)
	for _, d := range result.Dirs {
		fmt.Fprintf(w, "  %s/\n", d)
	}
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}

// Execute runs the CLI with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(context.Background(), os.Args[1:])
}

// execute dispatches to a subcommand only when args[0] names one. Any other
// argument list is a scaffold invocation and reaches runScaffold untouched,
// since cobra's command lookup would read a flag value such as "--name doctor"
// as a subcommand name.
func execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isSubcommand(args[0]) {
		rootCmd.SetArgs(args)
		return rootCmd.ExecuteContext(ctx)
	}
	rootCmd.SetContext(ctx)
	return runScaffold(rootCmd, args)
}

func isSubcommand(name string) bool {
	if name == cobra.ShellCompRequestCmd || name == cobra.ShellCompNoDescRequestCmd {
		return true
	}
	rootCmd.InitDefaultHelpCmd()
	rootCmd.InitDefaultCompletionCmd()
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
