package ignore

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Template is a named list of ignore patterns.
type Template struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// Catalog is an ordered, read-only set of templates.
type Catalog struct {
	templates []Template
}

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// Builtin returns the catalog embedded in the binary. It is parsed and
// validated once.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(builtinCatalog)
	})
	return builtin, builtinErr
}

// Parse validates catalog YAML against the catalog schema and decodes it.
// Template names must be unique.
func Parse(data []byte) (*Catalog, error) {
	issues, err := validate(data)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid template catalog:\n  %s", strings.Join(msgs, "\n  "))
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing template catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Templates))
	for _, t := range f.Templates {
		if seen[t.Name] {
			return nil, fmt.Errorf("invalid template catalog: duplicate template %q", t.Name)
		}
		seen[t.Name] = true
	}

	return &Catalog{templates: f.Templates}, nil
}

// Names returns template names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name
	}
	return names
}

// Has reports whether name is a template in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Lookup returns a copy of the patterns of the named template.
func (c *Catalog) Lookup(name string) ([]string, bool) {
	for _, t := range c.templates {
		if t.Name == name {
			return slices.Clone(t.Patterns), true
		}
	}
	return nil, false
}

// Templates returns a copy of all templates in catalog order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	for i, t := range c.templates {
		out[i] = Template{Name: t.Name, Patterns: slices.Clone(t.Patterns)}
	}
	return out
}
