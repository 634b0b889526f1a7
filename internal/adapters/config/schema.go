package config

// File represents the structure of the iconsync.yaml configuration file.
type File struct {
	Version string  `yaml:"version"`
	Dirs    DirsDTO `yaml:"dirs"`
	Height  int     `yaml:"height"`
	WEBP    WEBPDTO `yaml:"webp"`
}

// DirsDTO holds the directory overrides, relative to the project root.
type DirsDTO struct {
	SVG  string `yaml:"svg"`
	PNG  string `yaml:"png"`
	WEBP string `yaml:"webp"`
}

// WEBPDTO holds the final raster options.
type WEBPDTO struct {
	Policy string `yaml:"policy"`
}
