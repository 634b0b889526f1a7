package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// Renamer moves files to their normalized names.
type Renamer struct{}

// NewRenamer creates a new Renamer.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// Target returns the normalized path for path without touching the disk.
// The extension is preserved as is.
func (r *Renamer) Target(path string) (string, error) {
	ext := filepath.Ext(path)
	name := domain.NormalizeName(Stem(path))
	if name == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrEmptyName, "cannot normalize file name"), "path", path)
	}
	return filepath.Join(filepath.Dir(path), name+ext), nil
}

// Normalize renames the file at path to its normalized name and returns the new path.
// The file is left in place when another file already holds the target name.
func (r *Renamer) Normalize(path string) (string, error) {
	target, err := r.Target(path)
	if err != nil {
		return "", err
	}
	if target == path {
		return path, nil
	}

	if err := r.checkFree(path, target); err != nil {
		return "", err
	}

	if err := os.Rename(path, target); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to rename file"), "from", path), "to", target)
	}
	return target, nil
}

// checkFree fails when target is occupied by a file other than path.
// On case-insensitive file systems target may resolve to path itself.
func (r *Renamer) checkFree(path, target string) error {
	targetInfo, err := os.Lstat(target)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat rename target"), "path", target)
	}

	srcInfo, err := os.Lstat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if os.SameFile(srcInfo, targetInfo) {
		return nil
	}

	return zerr.With(zerr.With(zerr.Wrap(domain.ErrNameCollision, "cannot rename file"), "from", path), "to", target)
}
