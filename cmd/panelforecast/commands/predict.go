package commands

import (
	"panelforecast/internal"
	"panelforecast/internal/app"
	"panelforecast/internal/logger"
	"panelforecast/internal/repository"

	"github.com/spf13/cobra"
)

var (
	predictRegistryPath string
	predictDataDir      string
	predictOutPath      string
	predictLags         []int
	predictFallback     float64
	predictWorkers      int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict every test date from the lag snapshot tables and write the submission",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := app.PredictHandler{
			RegistryRepository:    repository.NewRegistryRepository(),
			LagSnapshotRepository: repository.NewLagSnapshotRepository(),
			DateListRepository:    repository.NewDateListRepository(),
			Logger:                logger.NewRun(),
		}
		return handler.Predict(cmd.Context(), app.PredictInput{
			RegistryPath: predictRegistryPath,
			DataDir:      predictDataDir,
			OutPath:      predictOutPath,
			Lags:         predictLags,
			Fallback:     predictFallback,
			Workers:      predictWorkers,
		})
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictRegistryPath, "registry", "", "path to the trained model registry")
	predictCmd.Flags().StringVar(&predictDataDir, "data-dir", "", "directory containing test.csv and lagged_test_labels/")
	predictCmd.Flags().StringVar(&predictOutPath, "out", "submission.csv", "path to write the submission table")
	predictCmd.Flags().IntSliceVar(&predictLags, "lags", []int{1, 2, 3, 4}, "lag offsets with snapshot tables")
	predictCmd.Flags().Float64Var(&predictFallback, "fallback", internal.DefaultLagFallback, "substitute for lag values not yet released")
	predictCmd.Flags().IntVar(&predictWorkers, "workers", 1, "parallel workers for the per-date loop")
	predictCmd.MarkFlagRequired("registry")
	predictCmd.MarkFlagRequired("data-dir")
	rootCmd.AddCommand(predictCmd)
}
