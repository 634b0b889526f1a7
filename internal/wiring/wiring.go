// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/iconsync/internal/adapters/config"
	_ "go.trai.ch/iconsync/internal/adapters/fs"
	_ "go.trai.ch/iconsync/internal/adapters/logger"
	_ "go.trai.ch/iconsync/internal/adapters/svg"
	_ "go.trai.ch/iconsync/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/iconsync/internal/adapters/webp"
	// Register app and engine nodes.
	_ "go.trai.ch/iconsync/internal/app"
	_ "go.trai.ch/iconsync/internal/engine/synchronizer"
)
