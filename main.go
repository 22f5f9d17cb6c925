package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rvclassifieds/internal/config"
	"rvclassifieds/internal/database"
	"rvclassifieds/internal/logger"
	"rvclassifieds/internal/notifications"
	"rvclassifieds/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Server.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	// --- Database ---
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeLogged(log, "database", func() error { return database.Close(db) })

	// --- Outbound mail ---
	var notifier notifications.Notifier
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQ.URL,
			Queues: []string{notifications.EmailQueue},
		}, log)
		if err != nil {
			return err
		}
		defer closeLogged(log, "RabbitMQ client", mqClient.Close)

		notifier = notifications.NewQueueNotifier(mqClient, log)

		delivery := notifications.NewDeliveryHandler(notifications.NewLogSender(log), log)
		if err := mqClient.Consume(notifications.EmailQueue, delivery.Handle); err != nil {
			return fmt.Errorf("failed to start email consumer: %w", err)
		}
	} else {
		log.Warn("RABBITMQ_URL not set, outbound email is only logged")
		notifier = notifications.NewLogNotifier(log)
	}

	app := NewApp(cfg, db, notifier, log)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		serverErr <- app.Listen(cfg.Server.Port)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Error("Error during Fiber shutdown", zap.Error(err))
	}
	log.Info("Server gracefully stopped")
	return nil
}

// closeLogged runs a shutdown step and logs its error, if any.
func closeLogged(log *zap.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Error("Failed to close "+what, zap.Error(err))
	}
}
