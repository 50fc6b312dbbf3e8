package project

import (
	"context"
	"fmt"

	"github.com/scalaproj/scalaproj/internal/ignore"
	"github.com/scalaproj/scalaproj/internal/scaffold"
)

// Create writes the project described by opts under opts.Path().
func Create(ctx context.Context, opts *Options, catalog *ignore.Catalog) (*scaffold.Result, error) {
	var patterns []string
	if opts.GitIgnore != "" {
		p, ok := catalog.Lookup(opts.GitIgnore)
		if !ok {
			return nil, fmt.Errorf("gitignore template %q not found", opts.GitIgnore)
		}
		patterns = p
	}

	data := scaffold.NewProjectData(opts.Name, opts.ScalaVersion, opts.SbtVersion, patterns)
	return scaffold.Generate(ctx, data, opts.Path())
}
