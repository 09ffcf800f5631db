package ports

import "go.trai.ch/libpack/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration and returns it with all paths resolved.
	Load() (*domain.Config, error)
}
