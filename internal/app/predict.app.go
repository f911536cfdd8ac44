package app

import (
	"context"
	"fmt"
	"path/filepath"

	"panelforecast/internal"
	"panelforecast/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	testFileName       = "test.csv"
	lagSnapshotDirName = "lagged_test_labels"

	// predictions for targets without a trained model
	submissionDefault = 0.0
)

type PredictHandler struct {
	RegistryRepository    repository.RegistryRepository
	LagSnapshotRepository repository.LagSnapshotRepository
	DateListRepository    repository.DateListRepository
	Logger                *zap.SugaredLogger
}

type PredictInput struct {
	RegistryPath string
	DataDir      string
	OutPath      string
	Lags         []int
	Fallback     float64
	Workers      int
}

// Predict runs the daily inference loop: for each date in the test date
// list, assemble whatever lag releases exist for that date and score
// every trained target. Dates are independent, so the loop fans out over
// a bounded worker group; the registry and lag tables are shared
// read-only and each worker writes only its own pre-sized row slot, so
// output keeps the date list's order no matter which date finishes
// first.
func (h PredictHandler) Predict(ctx context.Context, in PredictInput) error {
	registry, err := h.RegistryRepository.Load(in.RegistryPath)
	if err != nil {
		return fmt.Errorf("failed to load model registry: %w", err)
	}

	tables, err := h.LagSnapshotRepository.Load(filepath.Join(in.DataDir, lagSnapshotDirName), in.Lags)
	if err != nil {
		return fmt.Errorf("failed to load lag snapshots: %w", err)
	}

	dates, err := h.DateListRepository.Load(filepath.Join(in.DataDir, testFileName))
	if err != nil {
		return fmt.Errorf("failed to load inference date list: %w", err)
	}

	columns := internal.SnapshotTargetColumns(tables, in.Lags)
	if len(columns) == 0 {
		return fmt.Errorf("could not infer target columns from lag snapshots in %s", in.DataDir)
	}

	workers := in.Workers
	if workers <= 0 {
		workers = 1
	}
	rows := make([]map[string]float64, len(dates))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			byLag := internal.AssembleDailyLags(date, tables)
			rows[i] = internal.PredictPanel(registry, byLag, in.Fallback)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to predict panel: %w", err)
	}

	writer, err := repository.NewSubmissionWriter(in.OutPath, columns, submissionDefault)
	if err != nil {
		return err
	}
	for i, date := range dates {
		if err := writer.WriteRow(date, rows[i]); err != nil {
			writer.Close()
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	h.Logger.Infow("wrote submission",
		"path", in.OutPath,
		"dates", len(dates),
		"columns", len(columns),
		"models", len(registry),
	)
	return nil
}
