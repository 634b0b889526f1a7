package ports

import "go.trai.ch/iconsync/internal/core/domain"

// ConfigLoader defines the interface for loading run settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the project rooted at root. An empty file
	// selects the optional configuration file in root, whose absence yields
	// domain.DefaultSettings.
	Load(root, file string) (domain.Settings, error)
}
