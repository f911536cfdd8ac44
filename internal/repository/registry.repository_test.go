package repository

import (
	"path/filepath"
	"testing"

	"panelforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_RegistryRepository_RoundTrip(t *testing.T) {
	repo := NewRegistryRepository()

	registry := domain.Registry{
		"t": {
			Target:    "t",
			Lags:      []int{1, 2, 4},
			Weights:   []float64{0.25, -1.5, 3.125},
			Intercept: 0.0625,
		},
		"u": {
			Target:    "u",
			Lags:      []int{1},
			Weights:   []float64{1.0},
			Intercept: -2.0,
		},
	}

	path := filepath.Join(t.TempDir(), "models.json")
	require.NoError(t, repo.Save(path, registry))

	loaded, err := repo.Load(path)
	require.NoError(t, err)
	require.Equal(t, registry, loaded)

	// reloaded models must predict identically
	features := []float64{5.0, 0.0, -1.25}
	require.Equal(t, registry["t"].Predict(features), loaded["t"].Predict(features))
}

func Test_RegistryRepository_LoadErrors(t *testing.T) {
	repo := NewRegistryRepository()

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		path := writeFile(t, "models.json", "{not json")
		_, err := repo.Load(path)
		require.Error(t, err)
	})
}
