package fs

import (
	"os"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local file system.
type Workspace struct {
	walker   *Walker
	verifier *Verifier
	renamer  *Renamer
	hasher   ports.Hasher
}

// NewWorkspace creates a new Workspace from its parts.
func NewWorkspace(walker *Walker, verifier *Verifier, renamer *Renamer, hasher ports.Hasher) *Workspace {
	return &Workspace{
		walker:   walker,
		verifier: verifier,
		renamer:  renamer,
		hasher:   hasher,
	}
}

// Prepare creates the given directories if they do not exist.
func (w *Workspace) Prepare(dirs []string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
		}
	}
	return nil
}

// List returns the files in dir with the given extension, sorted by name.
func (w *Workspace) List(dir, ext string) ([]string, error) {
	return w.walker.Files(dir, ext)
}

// Normalize renames the file at path to its kebab-case name.
func (w *Workspace) Normalize(path string) (string, error) {
	return w.renamer.Normalize(path)
}

// Exists reports whether a file exists at path.
func (w *Workspace) Exists(path string) (bool, error) {
	return w.verifier.Exists(path)
}

// Size returns the size of the file at path in bytes.
func (w *Workspace) Size(path string) (int64, error) {
	return w.verifier.Size(path)
}

// WriteIfChanged writes data to path unless the existing file has the same digest.
func (w *Workspace) WriteIfChanged(path string, data []byte) (bool, error) {
	exists, err := w.verifier.Exists(path)
	if err != nil {
		return false, err
	}

	if exists {
		current, err := w.hasher.FileDigest(path)
		if err != nil {
			return false, err
		}
		if current == domain.DigestOf(data) {
			return false, nil
		}
	}

	//nolint:gosec // Path is derived from the project layout
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return true, nil
}

// Prune removes the files in dir whose stem is not in valid.
// Hidden files are left alone.
func (w *Workspace) Prune(dir string, valid domain.IdentitySet) ([]string, error) {
	files, err := w.walker.Files(dir, "")
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, path := range files {
		if valid.Has(Stem(path)) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, zerr.With(zerr.Wrap(err, "failed to remove orphan"), "path", path)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
