// Package prompt reads line-based answers from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Terminal asks questions on w and reads answers from r.
type Terminal struct {
	reader      *bufio.Reader
	w           io.Writer
	interactive bool
}

// New returns a Terminal. interactive reports whether a person is attached;
// callers must not Ask when it is false.
func New(r io.Reader, w io.Writer, interactive bool) *Terminal {
	return &Terminal{
		reader:      bufio.NewReader(r),
		w:           w,
		interactive: interactive,
	}
}

// Stdio returns a Terminal reading os.Stdin and writing prompts to w. It is
// interactive only when stdin is a terminal.
func Stdio(w io.Writer) *Terminal {
	return New(os.Stdin, w, IsTerminal(os.Stdin))
}

// IsTerminal checks if the given file is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive reports whether answers can be requested.
func (t *Terminal) Interactive() bool { return t.interactive }

// Ask prints question without a trailing newline and returns the next input
// line with its line terminator removed. Other whitespace is preserved.
func (t *Terminal) Ask(question string) (string, error) {
	fmt.Fprint(t.w, question)

	line, err := t.reader.ReadString('\n')
	if err != nil {
		// A final line without a terminator is still an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choose asks question and keeps asking retry until accept returns true for
// the answer, which it then returns.
func (t *Terminal) Choose(question, retry string, accept func(string) bool) (string, error) {
	answer, err := t.Ask(question)
	for err == nil && !accept(answer) {
		answer, err = t.Ask(retry)
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}
