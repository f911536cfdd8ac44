package app

import (
	"context"
	"fmt"

	"panelforecast/internal"
	"panelforecast/internal/repository"

	"go.uber.org/zap"
)

type TrainHandler struct {
	PanelRepository    repository.PanelRepository
	RegistryRepository repository.RegistryRepository
	Logger             *zap.SugaredLogger
}

type TrainInput struct {
	LabelsPath string
	OutPath    string
	Lags       []int
	Alpha      float64
	MinRows    int
}

// Train fits the per-target ridge models from the training labels table
// and persists the resulting registry. Training must complete before
// any inference starts; nothing here is incremental.
func (h TrainHandler) Train(ctx context.Context, in TrainInput) error {
	labels, err := h.PanelRepository.Load(in.LabelsPath)
	if err != nil {
		return fmt.Errorf("failed to load training labels: %w", err)
	}

	registry, err := internal.TrainPerTarget(internal.TrainPerTargetInput{
		Labels:  labels,
		Lags:    in.Lags,
		Alpha:   in.Alpha,
		MinRows: in.MinRows,
	})
	if err != nil {
		return fmt.Errorf("failed to train per-target models: %w", err)
	}

	h.Logger.Infow("trained per-target models",
		"targets", len(labels.Columns),
		"trained", len(registry),
		"skipped", len(labels.Columns)-len(registry),
		"lags", in.Lags,
		"alpha", in.Alpha,
	)

	if err := h.RegistryRepository.Save(in.OutPath, registry); err != nil {
		return fmt.Errorf("failed to save model registry: %w", err)
	}
	return nil
}
