package ignore

import "strings"

// FileName is the name of the generated ignore file.
const FileName = ".gitignore"

// Trailer lists the sbt build output paths appended to every generated file.
var Trailer = []string{
	"project/project/",
	"project/target/",
	"target/",
	"out/",
}

// Render returns .gitignore content: patterns one per line, followed by the
// trailer lines.
func Render(patterns []string) []byte {
	var b strings.Builder
	for _, p := range patterns {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	for _, p := range Trailer {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
