package project

import "github.com/scalaproj/scalaproj/internal/param"

// Switches understood by the scaffolder.
var (
	DirParam       = param.New("dir", "d")
	NameParam      = param.New("name", "n")
	SbtParam       = param.New("sbt", "b")
	ScalaParam     = param.New("scala", "s")
	GitIgnoreParam = param.New("git-ignore", "i")
	NoGitParam     = param.New("no-git", "")
)

// negativeAnswers decline the .gitignore template offer.
var negativeAnswers = []string{"n", "N", "no", "No", "NO"}

var (
	validatePath = param.NoSpaces("Path")
	validateName = param.NoSpaces("Name")
)
