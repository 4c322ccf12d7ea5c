package testutil

import (
	"io"
	"strings"
)

// ScriptedConsole feeds a fixed sequence of input lines to code that
// drives a console and records everything printed back. Reading past the
// script returns io.EOF, which a REPL should treat as end of session.
type ScriptedConsole struct {
	lines []string
	next  int
	all   []string

	Prompts []string
	Output  []string
	Errors  []string
}

// Script builds a console that will serve the given lines in order.
func Script(lines ...string) *ScriptedConsole {
	return &ScriptedConsole{lines: lines}
}

func (c *ScriptedConsole) ReadLine(prompt string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.next >= len(c.lines) {
		return "", io.EOF
	}
	line := c.lines[c.next]
	c.next++
	return line, nil
}

func (c *ScriptedConsole) Print(msg string) {
	c.Output = append(c.Output, msg)
	c.all = append(c.all, msg)
}

func (c *ScriptedConsole) PrintError(msg string) {
	c.Errors = append(c.Errors, msg)
	c.all = append(c.all, msg)
}

// Transcript returns every printed line, messages and errors interleaved
// in the order they appeared, joined by newlines.
func (c *ScriptedConsole) Transcript() string {
	return strings.Join(c.all, "\n")
}
