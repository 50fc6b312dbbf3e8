// Package ignore holds the built-in .gitignore template catalog. The catalog
// is embedded as catalog.yaml, checked against an embedded JSON schema when it
// is first loaded, and rendered into .gitignore content with a fixed trailer
// covering sbt build output.
package ignore
