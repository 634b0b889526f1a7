package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "iconsync.yaml"

	// DefaultVectorDir is the default directory holding vector sources.
	DefaultVectorDir = "svg"

	// DefaultIntermediateDir is the default directory for intermediate rasters.
	DefaultIntermediateDir = "png"

	// DefaultFinalDir is the default directory for final rasters.
	DefaultFinalDir = "webp"

	// DefaultHeight is the output height in pixels of rasterized vectors.
	DefaultHeight = 512

	// VectorExt is the extension of vector sources.
	VectorExt = ".svg"

	// IntermediateExt is the extension of intermediate rasters.
	IntermediateExt = ".png"

	// FinalExt is the extension of final rasters.
	FinalExt = ".webp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePolicy decides when an existing final raster is considered current.
type CachePolicy string

const (
	// CachePolicyExists treats any existing final raster as current.
	CachePolicyExists CachePolicy = "exists"
	// CachePolicyDigest re-encodes and rewrites the final raster when its content differs.
	CachePolicyDigest CachePolicy = "digest"
)

// Valid reports whether p is a known policy.
func (p CachePolicy) Valid() bool {
	return p == CachePolicyExists || p == CachePolicyDigest
}

// Settings holds the user-tunable parameters of a run.
type Settings struct {
	VectorDir       string
	IntermediateDir string
	FinalDir        string
	Height          int
	FinalPolicy     CachePolicy
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() Settings {
	return Settings{
		VectorDir:       DefaultVectorDir,
		IntermediateDir: DefaultIntermediateDir,
		FinalDir:        DefaultFinalDir,
		Height:          DefaultHeight,
		FinalPolicy:     CachePolicyExists,
	}
}

// Layout holds the resolved directories of a run.
type Layout struct {
	Root            string
	VectorDir       string
	IntermediateDir string
	FinalDir        string
}

// NewLayout resolves the directories in s against root.
// Absolute directories in s are kept as they are.
func NewLayout(root string, s Settings) Layout {
	return Layout{
		Root:            filepath.Clean(root),
		VectorDir:       resolve(root, s.VectorDir),
		IntermediateDir: resolve(root, s.IntermediateDir),
		FinalDir:        resolve(root, s.FinalDir),
	}
}

// Dirs returns the three directories in processing order.
func (l Layout) Dirs() []string {
	return []string{l.VectorDir, l.IntermediateDir, l.FinalDir}
}

// IntermediatePath returns the intermediate raster path for id.
func (l Layout) IntermediatePath(id Identity) string {
	return filepath.Join(l.IntermediateDir, id.String()+IntermediateExt)
}

// FinalPath returns the final raster path for id.
func (l Layout) FinalPath(id Identity) string {
	return filepath.Join(l.FinalDir, id.String()+FinalExt)
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
