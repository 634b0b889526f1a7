package ports

import "go.trai.ch/iconsync/internal/core/domain"

// Workspace groups the file system operations of a synchronization run.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Prepare creates the given directories if they do not exist.
	Prepare(dirs []string) error

	// List returns the files in dir with the given extension, sorted by name.
	List(dir, ext string) ([]string, error)

	// Normalize renames the file at path to its kebab-case name and returns
	// the resulting path. It fails if another file already holds that name.
	Normalize(path string) (string, error)

	// Exists reports whether a file exists at path.
	Exists(path string) (bool, error)

	// WriteIfChanged writes data to path unless the file already holds the
	// same content. It reports whether a write happened.
	WriteIfChanged(path string, data []byte) (bool, error)

	// Size returns the size in bytes of the file at path.
	Size(path string) (int64, error)

	// Prune removes the files in dir whose stem is not in valid and returns
	// the removed paths.
	Prune(dir string, valid domain.IdentitySet) ([]string, error)
}
