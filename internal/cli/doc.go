// Package cli defines the Cobra command tree for the scalaproj CLI. The root
// command scaffolds a project from the raw argument list; subcommands register
// themselves from their own files. Commands delegate to internal packages for
// business logic and only handle I/O formatting and user interaction.
package cli
