// Package scaffold writes a new sbt project to disk: the src/main and
// src/test source trees, build.sbt, project/build.properties, and an optional
// .gitignore. The two build files are rendered from embedded templates.
package scaffold
