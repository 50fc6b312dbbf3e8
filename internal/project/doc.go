// Package project declares the parameters of a new sbt project, resolves them
// from the argument list with their fallbacks, and hands the result to the
// scaffold package.
//
// Parameters are resolved in a fixed order: destination directory, project
// name, sbt version, Scala version, and .gitignore template. Every parameter
// is resolved before anything is written to disk.
package project
