package internal

import (
	"testing"

	"panelforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

// linearPanel builds a panel where column values grow linearly with the
// date id, so any lag-1 model has the exact solution y = x + slope.
func linearPanel(columns map[string]int) *domain.Panel {
	names := []string{}
	for name := range columns {
		names = append(names, name)
	}
	panel := domain.NewPanel(names)
	for d := 0; d < 40; d++ {
		values := map[string]float64{}
		for name, n := range columns {
			if d < n {
				values[name] = float64(d)
			}
		}
		panel.AddRow(domain.DateID(d), values)
	}
	panel.SortDates()
	return panel
}

func Test_TrainPerTarget(t *testing.T) {
	t.Run("skips targets below the minimum row threshold", func(t *testing.T) {
		// "long" yields 39 lag-complete rows, "short" only 19
		panel := linearPanel(map[string]int{"long": 40, "short": 20})

		registry, err := TrainPerTarget(TrainPerTargetInput{
			Labels: panel,
			Lags:   []int{1},
			Alpha:  1.0,
		})
		require.NoError(t, err)

		require.Len(t, registry, 1)
		require.Contains(t, registry, "long")
		require.NotContains(t, registry, "short")
	})

	t.Run("identical inputs reproduce identical coefficients", func(t *testing.T) {
		panel := linearPanel(map[string]int{"a": 40, "b": 35})
		in := TrainPerTargetInput{Labels: panel, Lags: []int{1, 2}, Alpha: 0.5}

		first, err := TrainPerTarget(in)
		require.NoError(t, err)
		second, err := TrainPerTarget(in)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("trained model carries its lag contract", func(t *testing.T) {
		panel := linearPanel(map[string]int{"a": 40})

		registry, err := TrainPerTarget(TrainPerTargetInput{
			Labels: panel,
			Lags:   []int{2, 4},
			Alpha:  1.0,
		})
		require.NoError(t, err)

		model := registry["a"]
		require.Equal(t, "a", model.Target)
		require.Equal(t, []int{2, 4}, model.Lags)
		require.Len(t, model.Weights, 2)
	})

	t.Run("rejects empty lag set", func(t *testing.T) {
		panel := linearPanel(map[string]int{"a": 40})

		_, err := TrainPerTarget(TrainPerTargetInput{Labels: panel, Lags: nil, Alpha: 1.0})
		require.Error(t, err)
	})
}
