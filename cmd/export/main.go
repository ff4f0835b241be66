// Command export writes every answer sheet to a dated CSV file in EXPORT_DIR.
// It is meant to be run from a scheduler.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/survey-service/internal/app"
	"github.com/SAP-F-2025/survey-service/internal/config"
	"github.com/SAP-F-2025/survey-service/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewLogger("").Error("Failed to load config", "error", err)
		return 1
	}
	logger := utils.NewLogger(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		return 1
	}
	defer application.Close()

	summary, err := application.Services.Export().ExportToFile(ctx, time.Now())
	if err != nil {
		logger.Error("Export failed", "error", err)
		return 1
	}

	logger.Info("Export written",
		"file", summary.FileName,
		"sheets", summary.SheetCount,
		"max_answers", summary.MaxAnswers,
		"duration", summary.ProcessingTime)
	return 0
}
