package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("PANELFORECAST_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "PANELFORECAST_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("PANELFORECAST_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

// NewRun returns a logger tagged with a fresh run id so the log lines
// of one pipeline invocation can be grepped out of a shared stream.
func NewRun() *zap.SugaredLogger {
	return New().With("run_id", uuid.NewString())
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
