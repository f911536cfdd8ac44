package domain

import "sort"

// TrainedModel holds one target's fitted ridge coefficients together
// with the lag list that defines its feature contract. Weights[i]
// corresponds to Lags[i]. Immutable after training.
type TrainedModel struct {
	Target    string    `json:"target"`
	Lags      []int     `json:"lags"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Predict applies the linear model to a feature vector assembled in lag
// order. The caller owns the contract that len(features) == len(Lags).
func (m TrainedModel) Predict(features []float64) float64 {
	pred := m.Intercept
	for i, w := range m.Weights {
		pred += w * features[i]
	}
	return pred
}

// Registry maps target name to its fitted model. It is the sole owner of
// fitted coefficients and is shared read-only across prediction dates.
type Registry map[string]TrainedModel

// Targets returns the registry's target names in sorted order.
func (r Registry) Targets() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
