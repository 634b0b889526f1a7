// Package config provides the configuration loader for iconsync.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings for the project rooted at root.
//
// When file is empty the optional iconsync.yaml in root is used and its
// absence yields the defaults. An explicit file must exist.
func (l *Loader) Load(root, file string) (domain.Settings, error) {
	path := file
	optional := file == ""
	if optional {
		path = filepath.Join(root, domain.ConfigFileName)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if optional && errors.Is(err, iofs.ErrNotExist) {
			l.Logger.Info("no " + domain.ConfigFileName + " found, using defaults")
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	return Parse(root, data)
}

// Parse decodes a configuration document, applies defaults and validates the result.
// Directories are compared after resolving them against root.
func Parse(root string, data []byte) (domain.Settings, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse config file")
	}

	s := domain.DefaultSettings()
	if f.Dirs.SVG != "" {
		s.VectorDir = f.Dirs.SVG
	}
	if f.Dirs.PNG != "" {
		s.IntermediateDir = f.Dirs.PNG
	}
	if f.Dirs.WEBP != "" {
		s.FinalDir = f.Dirs.WEBP
	}
	if f.Height != 0 {
		s.Height = f.Height
	}
	if f.WEBP.Policy != "" {
		s.FinalPolicy = domain.CachePolicy(f.WEBP.Policy)
	}

	if err := validate(root, s); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

func validate(root string, s domain.Settings) error {
	if s.Height < 0 {
		return zerr.With(domain.ErrInvalidHeight, "height", s.Height)
	}

	if !s.FinalPolicy.Valid() {
		return zerr.With(domain.ErrInvalidPolicy, "policy", string(s.FinalPolicy))
	}

	seen := make(map[string]struct{}, 3)
	for _, dir := range domain.NewLayout(root, s).Dirs() {
		if _, ok := seen[dir]; ok {
			return zerr.With(domain.ErrInvalidDirectory, "dir", dir)
		}
		seen[dir] = struct{}{}
	}

	return nil
}
