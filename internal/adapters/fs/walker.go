// Package fs provides file system adapters for listing, hashing, renaming and pruning icon files.
package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Walker lists the files of a single directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Files returns the regular files directly inside dir whose extension is ext,
// sorted by name. An empty ext matches every file.
// Subdirectories are not descended into and hidden files are skipped.
func (w *Walker) Files(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
	}

	var files []string
	for _, entry := range entries {
		if w.shouldSkip(entry, ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

func (w *Walker) shouldSkip(entry os.DirEntry, ext string) bool {
	name := entry.Name()

	if entry.IsDir() || strings.HasPrefix(name, ".") {
		return true
	}

	if !entry.Type().IsRegular() && entry.Type()&os.ModeSymlink == 0 {
		return true
	}

	return ext != "" && filepath.Ext(name) != ext
}

// Stem returns the base name of path without its final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
