package app

import (
	"context"
	"fmt"

	"panelforecast/internal/calculator"
	"panelforecast/internal/repository"

	"go.uber.org/zap"
)

type ScoreHandler struct {
	PanelRepository repository.PanelRepository
	Logger          *zap.SugaredLogger
}

type ScoreInput struct {
	TruthPath       string
	PredictionsPath string
}

// Score loads the ground-truth and prediction panels and reduces them
// to the IC-Sharpe leaderboard number. NaN means the score is undefined
// for these inputs, which is a valid outcome, not a failure.
func (h ScoreHandler) Score(ctx context.Context, in ScoreInput) (float64, error) {
	truth, err := h.PanelRepository.Load(in.TruthPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load ground truth panel: %w", err)
	}
	predictions, err := h.PanelRepository.Load(in.PredictionsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load prediction panel: %w", err)
	}

	score := calculator.ICSharpe(truth, predictions)
	h.Logger.Infow("scored prediction panel",
		"truth_dates", len(truth.Dates),
		"prediction_dates", len(predictions.Dates),
		"score", score,
	)
	return score, nil
}
