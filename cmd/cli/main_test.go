package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/prodcat/internal/cli"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A settings file with a syntax error makes app.NewApp() panic while
	// loading.
	invalidHCL := `
		commands {
		  quit = "X"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "settings.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-config", filePath}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should recover the panic and return it as an error.
	runErr := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
	require.Empty(t, out.String(), "nothing may reach stdout before the session starts")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	errW := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, errW, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errW.String(), "Usage:", "Expected help text to be printed to the error stream")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Session(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "Fruit\nApple\n1.50\nDairy\nMilk\n0.99\nq\nq\n"
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(input), out, &bytes.Buffer{}, []string{"-no-clear"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Dairy\tMilk\t0.99\nFruit\tApple\t1.5\n")
	require.Contains(t, out.String(), "Total amount: 2.49")
	require.NotContains(t, out.String(), "\x1b[2J")
}

func TestRun_EndOfInputExitsCleanly(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), strings.NewReader("Fruit\n"), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-no-clear"})

	require.NoError(t, err)
}
