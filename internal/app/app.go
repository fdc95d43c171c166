package app

import (
	"context"
	"fmt"

	"office-attendance/internal/config"
	"office-attendance/internal/schema"
	"office-attendance/internal/shared/clock"
	"office-attendance/internal/shared/connection"
	"office-attendance/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the API router and the connections it was built on.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	logger *zap.Logger
}

// BuildApp connects to the store, prepares the schema, and wires every
// module onto a new router.
func BuildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	if err := cfg.RequireJWTSecret(); err != nil {
		return nil, err
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("database connection established", zap.String("driver", cfg.Database.Driver))

	if err := schema.Setup(ctx, db, schema.Options{ResetAttendance: cfg.Database.ResetAttendance}, logger); err != nil {
		return nil, fmt.Errorf("schema setup: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries, logger)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
	}

	router, err := NewRouter(Deps{
		DB:     db,
		Redis:  rdb,
		Tokens: token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Clock:  clock.System(),
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	return &App{Router: router, DB: db, Redis: rdb, logger: log}, nil
}

// Close releases the database pool and the Redis client.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.logger.Warn("close database failed", zap.Error(err))
		}
	}
}

// RunSetup initialises the store the same way the API does at start-up,
// without serving anything.
func RunSetup(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return schema.Setup(ctx, db, schema.Options{ResetAttendance: cfg.Database.ResetAttendance}, logger)
}
