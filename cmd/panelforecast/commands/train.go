package commands

import (
	"panelforecast/internal"
	"panelforecast/internal/app"
	"panelforecast/internal/logger"
	"panelforecast/internal/repository"

	"github.com/spf13/cobra"
)

var (
	trainLabelsPath string
	trainOutPath    string
	trainLags       []int
	trainAlpha      float64
	trainMinRows    int
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit one ridge model per target from the training labels table",
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := app.TrainHandler{
			PanelRepository:    repository.NewPanelRepository(),
			RegistryRepository: repository.NewRegistryRepository(),
			Logger:             logger.NewRun(),
		}
		return handler.Train(cmd.Context(), app.TrainInput{
			LabelsPath: trainLabelsPath,
			OutPath:    trainOutPath,
			Lags:       trainLags,
			Alpha:      trainAlpha,
			MinRows:    trainMinRows,
		})
	},
}

func init() {
	trainCmd.Flags().StringVar(&trainLabelsPath, "labels", "", "path to the training labels CSV (date_id plus one column per target)")
	trainCmd.Flags().StringVar(&trainOutPath, "out", "models.json", "path to write the model registry")
	trainCmd.Flags().IntSliceVar(&trainLags, "lags", []int{1, 2, 3, 4}, "lag offsets used as features")
	trainCmd.Flags().Float64Var(&trainAlpha, "alpha", 1.0, "ridge regularization strength")
	trainCmd.Flags().IntVar(&trainMinRows, "min-rows", internal.MinTrainableRows, "minimum lag-complete rows a target needs to be trained")
	trainCmd.MarkFlagRequired("labels")
	rootCmd.AddCommand(trainCmd)
}
