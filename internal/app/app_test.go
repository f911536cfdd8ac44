package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"panelforecast/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// linearLabelsCSV renders a labels table where target "t" equals its
// date id, so a lag-1 model learns y = x + 1 exactly, and target
// "scarce" has too little history to train at all.
func linearLabelsCSV(days int) string {
	var b strings.Builder
	b.WriteString("date_id,t,scarce\n")
	for d := 0; d < days; d++ {
		scarce := ""
		if d < 5 {
			scarce = "1.0"
		}
		fmt.Fprintf(&b, "%d,%d,%s\n", d, d, scarce)
	}
	return b.String()
}

func Test_TrainHandler(t *testing.T) {
	dir := t.TempDir()
	labelsPath := filepath.Join(dir, "train_labels.csv")
	registryPath := filepath.Join(dir, "models.json")
	write(t, labelsPath, linearLabelsCSV(40))

	handler := TrainHandler{
		PanelRepository:    repository.NewPanelRepository(),
		RegistryRepository: repository.NewRegistryRepository(),
		Logger:             testLogger(),
	}

	err := handler.Train(context.Background(), TrainInput{
		LabelsPath: labelsPath,
		OutPath:    registryPath,
		Lags:       []int{1},
		Alpha:      0,
	})
	require.NoError(t, err)

	registry, err := repository.NewRegistryRepository().Load(registryPath)
	require.NoError(t, err)

	require.Contains(t, registry, "t")
	require.NotContains(t, registry, "scarce")

	model := registry["t"]
	require.InDelta(t, 1.0, model.Weights[0], 1e-9)
	require.InDelta(t, 1.0, model.Intercept, 1e-9)
}

func Test_TrainHandler_MissingLabels(t *testing.T) {
	handler := TrainHandler{
		PanelRepository:    repository.NewPanelRepository(),
		RegistryRepository: repository.NewRegistryRepository(),
		Logger:             testLogger(),
	}

	err := handler.Train(context.Background(), TrainInput{
		LabelsPath: filepath.Join(t.TempDir(), "nope.csv"),
		OutPath:    filepath.Join(t.TempDir(), "models.json"),
		Lags:       []int{1},
		Alpha:      1.0,
	})
	require.Error(t, err)
}

func Test_PredictHandler(t *testing.T) {
	dir := t.TempDir()

	// model for "t" with lags [1,2], weights [1,1]: the lag-1 release
	// of 5.0 plus the lag-2 fallback of 0.0 must predict exactly 5.0
	write(t, filepath.Join(dir, "models.json"), `{
		"t": {"target": "t", "lags": [1, 2], "weights": [1, 1], "intercept": 0}
	}`)

	write(t, filepath.Join(dir, "data", "test.csv"),
		"date_id\n100\n101\n100\n")
	write(t, filepath.Join(dir, "data", "lagged_test_labels", "test_labels_lag_1.csv"),
		"date_id,label_date_id,t,u\n"+
			"100,99,5.0,\n")
	// no lag-2 file at all

	handler := PredictHandler{
		RegistryRepository:    repository.NewRegistryRepository(),
		LagSnapshotRepository: repository.NewLagSnapshotRepository(),
		DateListRepository:    repository.NewDateListRepository(),
		Logger:                testLogger(),
	}

	outPath := filepath.Join(dir, "submission.csv")
	err := handler.Predict(context.Background(), PredictInput{
		RegistryPath: filepath.Join(dir, "models.json"),
		DataDir:      filepath.Join(dir, "data"),
		OutPath:      outPath,
		Lags:         []int{1, 2, 3, 4},
		Fallback:     0.0,
		Workers:      4,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t,
		"date_id,t,u\n"+
			"100,5,0\n"+ // lag-1 release + lag-2 fallback; "u" untrained
			"101,0,0\n", // date in no lag table: all-fallback features
		string(content))
}

func Test_PredictHandler_MissingLagDir(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "models.json"), `{}`)
	write(t, filepath.Join(dir, "data", "test.csv"), "date_id\n100\n")

	handler := PredictHandler{
		RegistryRepository:    repository.NewRegistryRepository(),
		LagSnapshotRepository: repository.NewLagSnapshotRepository(),
		DateListRepository:    repository.NewDateListRepository(),
		Logger:                testLogger(),
	}

	err := handler.Predict(context.Background(), PredictInput{
		RegistryPath: filepath.Join(dir, "models.json"),
		DataDir:      filepath.Join(dir, "data"),
		OutPath:      filepath.Join(dir, "submission.csv"),
		Lags:         []int{1, 2, 3, 4},
	})
	require.Error(t, err)
}

func Test_ScoreHandler(t *testing.T) {
	dir := t.TempDir()
	truthPath := filepath.Join(dir, "truth.csv")
	predPath := filepath.Join(dir, "pred.csv")

	write(t, truthPath,
		"date_id,a,b,c\n"+
			"1,1,2,3\n"+
			"2,1,2,3\n"+
			"3,1,2,3\n")
	write(t, predPath,
		"date_id,a,b,c\n"+
			"1,1,2,3\n"+
			"2,3,2,1\n"+
			"3,2,1,3\n")

	handler := ScoreHandler{
		PanelRepository: repository.NewPanelRepository(),
		Logger:          testLogger(),
	}

	score, err := handler.Score(context.Background(), ScoreInput{
		TruthPath:       truthPath,
		PredictionsPath: predPath,
	})
	require.NoError(t, err)
	require.InDelta(t, 0.16012815, score, 1e-6)
}
