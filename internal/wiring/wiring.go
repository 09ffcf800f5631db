// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/libpack/internal/adapters/bundler"
	_ "go.trai.ch/libpack/internal/adapters/cas"
	_ "go.trai.ch/libpack/internal/adapters/catalog"
	_ "go.trai.ch/libpack/internal/adapters/config"
	_ "go.trai.ch/libpack/internal/adapters/fs"
	_ "go.trai.ch/libpack/internal/adapters/logger"
	_ "go.trai.ch/libpack/internal/adapters/manifest"
	_ "go.trai.ch/libpack/internal/adapters/pnpm"
	_ "go.trai.ch/libpack/internal/adapters/postbuild"
	_ "go.trai.ch/libpack/internal/adapters/prompt"
	_ "go.trai.ch/libpack/internal/adapters/shell"
	_ "go.trai.ch/libpack/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/libpack/internal/app"
	_ "go.trai.ch/libpack/internal/engine/sequencer"
)
