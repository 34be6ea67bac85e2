package ports

import "go.trai.ch/projsync/internal/core/domain"

// SettingsLoader defines the interface for loading the projsync settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings of the project rooted at cwd.
	Load(cwd string) (*domain.Settings, error)
}
