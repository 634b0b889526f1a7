package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/internal/adapters/fs"
)

func TestVerifier_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	writeFile(t, filepath.Join(tmpDir, "out.webp"), "content")

	exists, err := verifier.Exists(filepath.Join(tmpDir, "out.webp"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = verifier.Exists(filepath.Join(tmpDir, "missing.webp"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestVerifier_Size(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	writeFile(t, filepath.Join(tmpDir, "out.png"), "12345")

	size, err := verifier.Size(filepath.Join(tmpDir, "out.png"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = verifier.Size(filepath.Join(tmpDir, "missing.png"))
	require.Error(t, err)
}
