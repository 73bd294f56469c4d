package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"buyurtma/internal/amqp"
	"buyurtma/internal/cli"
	"buyurtma/internal/orders"
	"buyurtma/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting buyurtma-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the backup worker")
		os.Exit(1)
	}

	storeResult := cli.OpenStore(context.Background(), logger, cfg)
	if storeResult.Cleanup != nil {
		defer func() {
			if err := storeResult.Cleanup(); err != nil {
				logger.Error("Storage cleanup failed", "error", err)
			}
		}()
	}

	repo := orders.NewWithKey(storeResult.Store, cfg.StorageKey)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	backupWorker := worker.NewBackupWorker(repo, cfg.BackupDir, cfg.BackupKeep)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// One snapshot at startup to cover events missed while down.
	if _, err := backupWorker.WriteSnapshot(ctx); err != nil {
		logger.Error("Startup snapshot failed", "error", err)
		// Don't exit - continue with normal operation
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeOrderEvents(gctx, backupWorker.HandleOrderEvent)
	})

	// Periodic fallback snapshot in case change events are lost.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.BackupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				if _, err := backupWorker.WriteSnapshot(gctx); err != nil {
					logger.Error("Periodic snapshot failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}
