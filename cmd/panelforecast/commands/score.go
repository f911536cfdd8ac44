package commands

import (
	"fmt"

	"panelforecast/internal/app"
	"panelforecast/internal/logger"
	"panelforecast/internal/repository"

	"github.com/spf13/cobra"
)

var (
	scoreTruthPath string
	scorePredPath  string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a submission against ground truth with the daily rank-IC Sharpe metric",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := app.ScoreHandler{
			PanelRepository: repository.NewPanelRepository(),
			Logger:          logger.NewRun(),
		}
		score, err := handler.Score(cmd.Context(), app.ScoreInput{
			TruthPath:       scoreTruthPath,
			PredictionsPath: scorePredPath,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", score)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreTruthPath, "truth", "", "path to the ground truth panel CSV")
	scoreCmd.Flags().StringVar(&scorePredPath, "pred", "", "path to the prediction panel CSV")
	scoreCmd.MarkFlagRequired("truth")
	scoreCmd.MarkFlagRequired("pred")
	rootCmd.AddCommand(scoreCmd)
}
