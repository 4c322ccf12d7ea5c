// Package cli is the thin command layer between the terminal and the
// address book. It owns prompting, command dispatch, and error rendering;
// business rules stay in the domain and book packages.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the line-oriented terminal the assistant talks through.
// Implementations must not interpret the text they carry.
type Console interface {
	// ReadLine shows prompt and returns the next input line without its
	// trailing newline. The returned error is io.EOF when input ended.
	ReadLine(prompt string) (string, error)
	// Print writes one message line.
	Print(msg string)
	// PrintError writes one error line, visually distinct from Print.
	PrintError(msg string)
}

// Terminal is the real console: prompts and messages go to out, input
// comes line by line from in.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

func NewTerminal(in io.Reader, out io.Writer, noColor bool) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(noColor),
	}
}

func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, t.styles.prompt.Render(prompt))
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Print(msg string) {
	fmt.Fprintln(t.out, msg)
}

func (t *Terminal) PrintError(msg string) {
	fmt.Fprintln(t.out, t.styles.err.Render(msg))
}
