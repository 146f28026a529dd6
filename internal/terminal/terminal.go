// Package terminal is the line-oriented I/O collaborator consumed by the
// catalog session: it reads whole lines, writes text and clears the screen.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ClearSequence erases the screen and moves the cursor home.
const ClearSequence = "\x1b[2J\x1b[H"

// Terminal is what the session needs from a console.
type Terminal interface {
	// Write emits s without a trailing newline (used for prompts).
	Write(s string)
	// WriteLine emits s followed by a newline.
	WriteLine(s string)
	// ReadLine blocks until a full line is available and returns it without
	// the line terminator. It returns io.EOF once input is exhausted.
	ReadLine() (string, error)
	// ClearScreen clears the visible screen.
	ClearScreen()
}

// Console is a Terminal over an arbitrary reader and writer, typically
// os.Stdin and os.Stdout.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// Option configures a Console.
type Option func(*Console)

// WithoutClear turns ClearScreen into a no-op, which keeps piped output free
// of escape sequences.
func WithoutClear() Option {
	return func(c *Console) { c.clear = false }
}

// NewConsole creates a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		clear: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Write implements Terminal.
func (c *Console) Write(s string) {
	fmt.Fprint(c.out, s)
}

// WriteLine implements Terminal.
func (c *Console) WriteLine(s string) {
	fmt.Fprintln(c.out, s)
}

// ReadLine implements Terminal. A final line without a trailing newline is
// still returned; io.EOF is reported on the following call.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ClearScreen implements Terminal.
func (c *Console) ClearScreen() {
	if c.clear {
		fmt.Fprint(c.out, ClearSequence)
	}
}
