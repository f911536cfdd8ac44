package internal

import (
	"fmt"

	"panelforecast/internal/domain"
)

type TrainPerTargetInput struct {
	Labels  *domain.Panel
	Lags    []int
	Alpha   float64
	MinRows int
}

// TrainPerTarget fits one independent ridge model per label column.
// Targets with fewer than MinRows lag-complete rows are skipped, not
// errored - sparse history is an expected property of the panel.
func TrainPerTarget(in TrainPerTargetInput) (domain.Registry, error) {
	if in.Labels == nil {
		return nil, fmt.Errorf("cannot train on nil labels panel")
	}
	if len(in.Lags) == 0 {
		return nil, fmt.Errorf("cannot train with an empty lag set")
	}
	minRows := in.MinRows
	if minRows <= 0 {
		minRows = MinTrainableRows
	}

	registry := domain.Registry{}
	for _, target := range in.Labels.Columns {
		features := BuildLagFeatures(in.Labels.Series(target), in.Lags)
		if len(features.Y) < minRows {
			continue
		}
		weights, intercept, err := fitRidge(features.X, features.Y, in.Alpha)
		if err != nil {
			return nil, fmt.Errorf("failed to fit ridge for target %s: %w", target, err)
		}
		lags := make([]int, len(in.Lags))
		copy(lags, in.Lags)
		registry[target] = domain.TrainedModel{
			Target:    target,
			Lags:      lags,
			Weights:   weights,
			Intercept: intercept,
		}
	}
	return registry, nil
}
