// Package config manages user-level settings stored at ~/.scalaproj/config.yaml.
// It provides functions to load, read, and write the keys that select which
// executables answer the sbt and Scala version probes.
package config
