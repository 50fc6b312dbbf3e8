package project

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/scalaproj/scalaproj/internal/ctxlog"
	"github.com/scalaproj/scalaproj/internal/ignore"
	"github.com/scalaproj/scalaproj/internal/param"
	"github.com/scalaproj/scalaproj/internal/probe"
)

// Terminal is the interactive input used by the name and template fallbacks.
type Terminal interface {
	Interactive() bool
	Ask(question string) (string, error)
	Choose(question, retry string, accept func(string) bool) (string, error)
}

// Options are the resolved parameters of a new project.
type Options struct {
	Dir          string
	Name         string
	SbtVersion   string
	ScalaVersion string
	// GitIgnore is a catalog template name, or "" when no .gitignore is wanted.
	GitIgnore string
}

// Path returns the project root, <Dir>/<Name>.
func (o *Options) Path() string {
	return filepath.Join(o.Dir, o.Name)
}

// Resolver resolves Options from an argument list.
type Resolver struct {
	Terminal Terminal
	Runner   probe.Runner
	Catalog  *ignore.Catalog

	// SbtCommand and ScalaCommand name the probe executables.
	SbtCommand   string
	ScalaCommand string

	// Getwd returns the directory used when --dir is absent.
	Getwd func() (string, error)

	// Notices receives messages about defaulted values and warnings.
	Notices io.Writer
}

// Resolve resolves every parameter in declaration order and returns on the
// first error.
func (r *Resolver) Resolve(ctx context.Context, args []string) (*Options, error) {
	var opts Options

	steps := []struct {
		spec param.Spec
		dst  *string
	}{
		{param.Spec{Param: DirParam, RequiresValue: true, Validate: validatePath, Fallback: r.workingDir()}, &opts.Dir},
		{param.Spec{Param: NameParam, RequiresValue: true, Validate: validateName, Fallback: r.askName()}, &opts.Name},
		{param.Spec{Param: SbtParam, RequiresValue: true, Validate: r.warnUnlessSemver("sbt"), Fallback: r.systemSbt()}, &opts.SbtVersion},
		{param.Spec{Param: ScalaParam, RequiresValue: true, Validate: r.warnUnlessSemver("Scala"), Fallback: r.systemScala()}, &opts.ScalaVersion},
	}

	for _, s := range steps {
		v, err := r.resolve(ctx, args, s.spec)
		if err != nil {
			return nil, err
		}
		*s.dst = v
	}

	if param.Present(args, NoGitParam) {
		ctxlog.FromContext(ctx).Debug("skipping .gitignore", "flag", NoGitParam.Long())
		return &opts, nil
	}

	// Without a terminal there is nobody to ask, so no template is written.
	fallback := param.Literal("")
	if r.Terminal.Interactive() {
		fallback = r.chooseTemplate()
	}
	spec := param.Spec{
		Param:         GitIgnoreParam,
		RequiresValue: true,
		Validate:      r.validateTemplate,
		Fallback:      fallback,
	}
	v, err := r.resolve(ctx, args, spec)
	if err != nil {
		return nil, err
	}
	opts.GitIgnore = v

	return &opts, nil
}

func (r *Resolver) resolve(ctx context.Context, args []string, spec param.Spec) (string, error) {
	res, err := param.Resolve(ctx, args, spec)
	if err != nil {
		return "", err
	}
	ctxlog.FromContext(ctx).Debug("resolved parameter",
		"flag", spec.Param.Long(), "value", res.Value, "from_args", res.Present)
	return res.Value, nil
}

func (r *Resolver) notice(format string, a ...any) {
	if r.Notices != nil {
		fmt.Fprintf(r.Notices, format+"\n", a...)
	}
}

// validateTemplate accepts catalog template names only.
func (r *Resolver) validateTemplate(choice string) (string, error) {
	if !r.Catalog.Has(choice) {
		return "", fmt.Errorf("%w: Selected template (%s) does not exist or isn't supported yet", param.ErrInvalid, choice)
	}
	return choice, nil
}

// warnUnlessSemver accepts any value but warns when it is not a semantic version.
func (r *Resolver) warnUnlessSemver(tool string) param.Validator {
	return func(v string) (string, error) {
		if !probe.IsSemver(v) {
			r.notice("warning: %s version %q is not a semantic version", tool, v)
		}
		return v, nil
	}
}

// ─── Fallbacks ─────────────────────────────────────────────────────

func (r *Resolver) workingDir() param.Source {
	return param.SourceFunc(func(context.Context) (string, error) {
		path, err := r.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving current working dir: %w", err)
		}
		r.notice("Using current working dir %s as no path was specified", path)
		return path, nil
	})
}

func (r *Resolver) askName() param.Source {
	return param.SourceFunc(func(context.Context) (string, error) {
		if !r.Terminal.Interactive() {
			return "", fmt.Errorf("%w: Project name must be provided when calling from another process", param.ErrMissing)
		}
		name, err := r.Terminal.Ask("Input project name: ")
		if err != nil {
			return "", fmt.Errorf("%w: reading project name: %v", param.ErrMissing, err)
		}
		return validateName(name)
	})
}

func (r *Resolver) systemSbt() param.Source {
	return param.SourceFunc(func(ctx context.Context) (string, error) {
		ver, err := probe.SbtVersion(ctx, r.Runner, r.SbtCommand)
		if err != nil {
			return "", err
		}
		r.notice("Using system sbt version (%s)", ver)
		return ver, nil
	})
}

func (r *Resolver) systemScala() param.Source {
	return param.SourceFunc(func(ctx context.Context) (string, error) {
		ver, err := probe.ScalaVersion(ctx, r.Runner, r.ScalaCommand)
		if err != nil {
			return "", err
		}
		r.notice("Using system Scala version (%s)", ver)
		return ver, nil
	})
}

// chooseTemplate offers the catalog on the terminal. Answering no chooses no
// template.
func (r *Resolver) chooseTemplate() param.Source {
	return param.SourceFunc(func(context.Context) (string, error) {
		names := r.Catalog.Names()
		available := strings.Join(names, "/")
		question := fmt.Sprintf("No gitignore template was found, do you wish to add one of the predefined (%s/no)? ", available)
		retry := fmt.Sprintf("Invalid choice, select one of the available templates (%s) or 'no': ", available)

		choice, err := r.Terminal.Choose(question, retry, func(s string) bool {
			return slices.Contains(names, s) || slices.Contains(negativeAnswers, s)
		})
		if err != nil {
			return "", fmt.Errorf("%w: reading gitignore template: %v", param.ErrMissing, err)
		}
		if slices.Contains(negativeAnswers, choice) {
			return "", nil
		}
		return choice, nil
	})
}
