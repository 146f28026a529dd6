package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"a.hcl", "b.txt", "B.HCL", "notes.hcl.bak", ".git/e.hcl", "nested/c.hcl", "nested/deeper/d.hcl"} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(""), 0o600))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "B.HCL"),
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
		filepath.Join(root, "nested", "deeper", "d.hcl"),
	}, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")

	require.Error(t, err)
}
