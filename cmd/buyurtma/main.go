package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"buyurtma/internal/amqp"
	"buyurtma/internal/cli"
	apphttp "buyurtma/internal/http"
	"buyurtma/internal/orders"
	"buyurtma/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	cfg := cli.LoadAndValidateConfig(logger)

	storeResult := cli.OpenStore(context.Background(), logger, cfg)
	if storeResult.Cleanup != nil {
		defer func() {
			if err := storeResult.Cleanup(); err != nil {
				logger.Error("Storage cleanup failed", "error", err)
			}
		}()
	}

	repo := orders.NewWithKey(storeResult.Store, cfg.StorageKey)
	collection, err := repo.Load(context.Background())
	if err != nil {
		// The repository degrades to an empty collection; keep serving.
		logger.Error("Failed to load persisted orders, starting empty", "error", err)
	}
	logger.Info("Order collection loaded", "orders", len(collection), "key", cfg.StorageKey)

	// AMQP is optional: without it mutations still work, only change
	// events are skipped.
	var events *amqp.Client
	if cfg.AMQPURL != "" {
		events, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without change events", "error", err)
			events = nil
		} else {
			logger.Info("Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewOrderService(repo, events)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Service close failed", "error", err)
		}
	}()

	srv := apphttp.NewServer(":"+cfg.Port, svc, cfg.MutationRateLimit)
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		// One last persistence attempt in case a save failed earlier.
		if err := svc.Flush(shutdownCtx); err != nil {
			logger.Error("Final flush failed", "error", err)
		}
	})

	logger.Info("Starting buyurtma server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
