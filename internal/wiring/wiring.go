// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/projsync/internal/adapters/config"
	_ "go.trai.ch/projsync/internal/adapters/fs"
	_ "go.trai.ch/projsync/internal/adapters/logger"
	_ "go.trai.ch/projsync/internal/adapters/manifest"
	_ "go.trai.ch/projsync/internal/adapters/prefs"
	_ "go.trai.ch/projsync/internal/adapters/state"
	// Register app and engine nodes.
	_ "go.trai.ch/projsync/internal/app"
	_ "go.trai.ch/projsync/internal/engine/catalog"
	_ "go.trai.ch/projsync/internal/engine/tracker"
)
