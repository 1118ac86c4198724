package ports

import "go.trai.ch/ccscope/internal/core/domain"

// ConfigLoader defines the interface for loading and saving the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration stored below the given project root.
	// A missing configuration yields an empty config and no error.
	Load(root string) (*domain.ProjectConfig, error)

	// Save writes cfg below the given project root.
	Save(root string, cfg *domain.ProjectConfig) error
}
