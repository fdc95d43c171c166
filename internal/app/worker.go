package app

import (
	"context"
	"errors"
	"fmt"

	"office-attendance/internal/config"
	"office-attendance/internal/messaging/kafka"
	"office-attendance/internal/messaging/kafka/producer"
	"office-attendance/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until ctx is cancelled.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")
	if !cfg.Outbox.Enabled {
		return errors.New("outbox is disabled, set outbox.enabled to run the worker")
	}

	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, cfg.Database.MaxRetries, logger)
	if err != nil {
		return fmt.Errorf("connect kafka: %w", err)
	}
	defer writer.Close()

	log.Info("outbox worker connected", zap.Strings("brokers", cfg.Kafka.Brokers))

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(db), writer, logger, producer.Options{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
	})
	return nil
}
