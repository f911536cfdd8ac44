package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"panelforecast/internal/domain"
)

// RegistryRepository persists the trained model registry as a JSON
// blob. Save/Load must round-trip to identical prediction behavior.
type RegistryRepository interface {
	Save(path string, registry domain.Registry) error
	Load(path string) (domain.Registry, error)
}

func NewRegistryRepository() RegistryRepository {
	return registryRepositoryHandler{}
}

type registryRepositoryHandler struct{}

func (h registryRepositoryHandler) Save(path string, registry domain.Registry) error {
	blob, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model registry: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write model registry %s: %w", path, err)
	}
	return nil
}

func (h registryRepositoryHandler) Load(path string) (domain.Registry, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model registry %s: %w", path, err)
	}
	registry := domain.Registry{}
	if err := json.Unmarshal(blob, &registry); err != nil {
		return nil, fmt.Errorf("failed to decode model registry %s: %w", path, err)
	}
	return registry, nil
}
