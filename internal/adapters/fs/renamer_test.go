package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/internal/adapters/fs"
	"go.trai.ch/iconsync/internal/core/domain"
)

func TestRenamer_Normalize(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "My Icon.svg")
	writeFile(t, src, "<svg/>")

	got, err := fs.NewRenamer().Normalize(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "my-icon.svg"), got)
	assert.FileExists(t, got)
	assert.NoFileExists(t, src)
}

func TestRenamer_Normalize_AlreadyNormalized(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "my-icon.svg")
	writeFile(t, src, "<svg/>")

	got, err := fs.NewRenamer().Normalize(src)
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestRenamer_Normalize_Collision(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "My Icon.svg")
	existing := filepath.Join(tmpDir, "my-icon.svg")
	writeFile(t, src, "new")
	writeFile(t, existing, "old")

	_, err := fs.NewRenamer().Normalize(src)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrNameCollision.Error())

	// Neither file was touched.
	assert.FileExists(t, src)
	assert.FileExists(t, existing)
}

func TestRenamer_Target_Empty(t *testing.T) {
	_, err := fs.NewRenamer().Target(filepath.Join(t.TempDir(), "!!!.svg"))
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrEmptyName.Error())
}

func TestRenamer_Target_KeepsExtension(t *testing.T) {
	got, err := fs.NewRenamer().Target("/icons/Big_Arrow.PNG")
	require.NoError(t, err)
	assert.Equal(t, "/icons/bigarrow.PNG", got)
}
