package internal

import (
	"panelforecast/internal/domain"
)

// DefaultLagFallback substitutes for any lag value that has not been
// released by prediction time. Zero encodes "no signal", it is a
// modeling default rather than a hard requirement, so callers may
// override it.
const DefaultLagFallback = 0.0

// PredictPanel computes one prediction per registry target for a single
// date. Each target's feature vector is assembled over its own lag list,
// taking the released value from the lookup when present and the
// fallback otherwise. Stateless: the registry and lookup are read-only.
func PredictPanel(registry domain.Registry, byLag map[int]map[string]float64, fallback float64) map[string]float64 {
	predictions := make(map[string]float64, len(registry))
	for target, model := range registry {
		features := make([]float64, len(model.Lags))
		for i, lag := range model.Lags {
			features[i] = fallback
			if row, ok := byLag[lag]; ok {
				if v, ok := row[target]; ok {
					features[i] = v
				}
			}
		}
		predictions[target] = model.Predict(features)
	}
	return predictions
}
