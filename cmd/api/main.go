package main

import (
	"context"
	"flag"

	"office-attendance/internal/app"
	"office-attendance/internal/bootstrap"
	"office-attendance/internal/config"
	"office-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()
	if cfg.Log.Format == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := app.BuildApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()

	if err := bootstrap.StartHTTPServer(a.Router, cfg.Server, logger); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
