package cli

import (
	"fmt"

	"github.com/scalaproj/scalaproj/internal/ignore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in .gitignore templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := ignore.Builtin()
		if err != nil {
			return fmt.Errorf("loading gitignore templates: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, t := range catalog.Templates() {
			fmt.Fprintln(out, t.Name)
			for _, p := range t.Patterns {
				fmt.Fprintf(out, "  %s\n", p)
			}
		}
		fmt.Fprintln(out, "\nEvery generated .gitignore also ends with:")
		for _, p := range ignore.Trailer {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return nil
	},
}
