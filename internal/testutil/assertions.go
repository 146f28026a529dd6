package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/prodcat/internal/session"
)

// CatalogRows extracts the product rows of the last catalog listing in
// output: the lines between the last header and the following total.
func CatalogRows(t *testing.T, output string) []string {
	t.Helper()

	idx := strings.LastIndex(output, session.Header+"\n")
	require.NotEqual(t, -1, idx, "no catalog header found in output")
	rest := output[idx+len(session.Header)+1:]

	end := strings.Index(rest, "\nTotal amount: ")
	require.NotEqual(t, -1, end, "no total found after the last header")

	var rows []string
	for _, line := range strings.Split(rest[:end], "\n") {
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

// LastTotal returns the amount printed by the last catalog listing.
func LastTotal(t *testing.T, output string) string {
	t.Helper()

	const marker = "\nTotal amount: "
	idx := strings.LastIndex(output, marker)
	require.NotEqual(t, -1, idx, "no total found in output")
	rest := output[idx+len(marker):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return rest
}

// AssertCount checks that substr appears exactly n times in output.
func AssertCount(t *testing.T, output, substr string, n int) {
	t.Helper()
	require.Equal(t, n, strings.Count(output, substr), "unexpected number of %q in output", substr)
}
