// Command setup creates the tables and seeds the default administrator.
// Unless database.reset_attendance is false it also wipes attendance history.
package main

import (
	"context"
	"flag"

	"office-attendance/internal/app"
	"office-attendance/internal/bootstrap"
	"office-attendance/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunSetup(context.Background(), cfg, logger); err != nil {
		logger.Fatal("setup failed", zap.Error(err))
	}
	logger.Info("database ready",
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("attendance_reset", cfg.Database.ResetAttendance),
	)
}
