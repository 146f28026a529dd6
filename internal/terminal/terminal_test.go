package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("first\r\n  second  \n\nlast")
	c := NewConsole(in, io.Discard)

	// --- Act & Assert ---
	for _, want := range []string{"first", "  second  ", "", "last"} {
		line, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := c.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestConsole_Write(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(""), out)

	c.Write("Enter a Price: ")
	c.WriteLine("done")
	c.ClearScreen()

	assert.Equal(t, "Enter a Price: done\n"+ClearSequence, out.String())
}

func TestConsole_WithoutClear(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(""), out, WithoutClear())

	c.ClearScreen()

	assert.Empty(t, out.String())
}
