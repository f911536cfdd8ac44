package internal

import (
	"testing"

	"panelforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_PredictPanel(t *testing.T) {
	registry := domain.Registry{
		"t": {
			Target:    "t",
			Lags:      []int{1, 2},
			Weights:   []float64{1.0, 1.0},
			Intercept: 0.0,
		},
	}

	t.Run("missing lag slots fall back to zero", func(t *testing.T) {
		// lag 1 released t=5.0, lag 2 has nothing for this date: the
		// model must see exactly [5.0, 0.0]
		byLag := map[int]map[string]float64{
			1: {"t": 5.0},
		}

		predictions := PredictPanel(registry, byLag, DefaultLagFallback)
		require.InDelta(t, 5.0, predictions["t"], 1e-12)
	})

	t.Run("empty lookup predicts from all-fallback features", func(t *testing.T) {
		predictions := PredictPanel(registry, map[int]map[string]float64{}, DefaultLagFallback)
		require.InDelta(t, 0.0, predictions["t"], 1e-12)
	})

	t.Run("fallback is configurable", func(t *testing.T) {
		predictions := PredictPanel(registry, map[int]map[string]float64{}, 2.5)
		require.InDelta(t, 5.0, predictions["t"], 1e-12)
	})

	t.Run("repeat invocation is identical", func(t *testing.T) {
		byLag := map[int]map[string]float64{
			1: {"t": 5.0},
			2: {"t": -1.25},
		}

		first := PredictPanel(registry, byLag, DefaultLagFallback)
		second := PredictPanel(registry, byLag, DefaultLagFallback)
		require.Equal(t, first, second)
	})

	t.Run("targets outside the registry are omitted", func(t *testing.T) {
		byLag := map[int]map[string]float64{
			1: {"t": 5.0, "other": 9.0},
		}

		predictions := PredictPanel(registry, byLag, DefaultLagFallback)
		require.Len(t, predictions, 1)
		require.NotContains(t, predictions, "other")
	})
}
