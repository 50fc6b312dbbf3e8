package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/scalaproj/scalaproj/internal/ctxlog"
	"github.com/scalaproj/scalaproj/internal/ignore"
)

//go:embed templates
var templateFS embed.FS

// DefaultVersion is the version written to every new build.sbt.
const DefaultVersion = "0.1.0"

// SourceDirs are the source directories created under the project root.
var SourceDirs = []string{
	"src/main/scala",
	"src/main/resources",
	"src/test/scala",
	"src/test/resources",
}

// ProjectData holds all template variables available to the build templates.
type ProjectData struct {
	Name         string // e.g., "demo"
	Version      string // Always DefaultVersion for new projects
	ScalaVersion string // e.g., "3.3.1"
	SbtVersion   string // e.g., "1.9.0"

	// IgnorePatterns are written to .gitignore ahead of ignore.Trailer.
	// No .gitignore is written when nil.
	IgnorePatterns []string
}

// NewProjectData creates a ProjectData with the default project version.
func NewProjectData(name, scalaVersion, sbtVersion string, ignorePatterns []string) *ProjectData {
	return &ProjectData{
		Name:           name,
		Version:        DefaultVersion,
		ScalaVersion:   scalaVersion,
		SbtVersion:     sbtVersion,
		IgnorePatterns: ignorePatterns,
	}
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Dirs      []string
	Files     []string
}

// Generate creates the project at outputDir. It refuses to write into an
// existing non-empty directory. Steps run in order without rollback, so a
// failure part way leaves the directories and files created so far.
func Generate(ctx context.Context, data *ProjectData, outputDir string) (*Result, error) {
	log := ctxlog.FromContext(ctx)

	// Check for existing files to prevent accidental overwrites.
	existingEntries, err := os.ReadDir(outputDir)
	if err == nil && len(existingEntries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	mkdir := func(rel string) error {
		dir := filepath.Join(outputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
		log.Debug("created directory", "path", dir)
		result.Dirs = append(result.Dirs, rel)
		return nil
	}

	write := func(rel string, content []byte) error {
		p := filepath.Join(outputDir, filepath.FromSlash(rel))
		if err := os.WriteFile(p, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
		log.Debug("wrote file", "path", p, "bytes", len(content))
		result.Files = append(result.Files, rel)
		return nil
	}

	for _, dir := range SourceDirs {
		if err := mkdir(dir); err != nil {
			return nil, err
		}
	}

	if err := mkdir("project"); err != nil {
		return nil, err
	}
	props, err := render("project/build.properties", data)
	if err != nil {
		return nil, err
	}
	if err := write("project/build.properties", props); err != nil {
		return nil, err
	}

	buildSbt, err := render("build.sbt", data)
	if err != nil {
		return nil, err
	}
	if err := write("build.sbt", buildSbt); err != nil {
		return nil, err
	}

	if data.IgnorePatterns != nil {
		if err := write(ignore.FileName, ignore.Render(data.IgnorePatterns)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// render executes the embedded template for the given output path.
func render(outName string, data *ProjectData) ([]byte, error) {
	tmplPath := path.Join("templates", outName+".tmpl")
	tmplBytes, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(outName).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}
