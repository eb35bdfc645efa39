/**
 * @description
 * This is the main entry point for the Levqor web shell. It initializes and
 * wires together all the components of the application: configuration, the
 * backend and payments clients, the optional Redis rate limiter and
 * RabbitMQ event producer, the entry service, and the HTTP router. Finally,
 * it starts the HTTP server and handles graceful shutdown.
 *
 * @dependencies
 * - github.com/joho/godotenv: To load .env files for local development.
 * - github.com/redis/go-redis/v9: Optional distributed rate limiting.
 * - github.com/rabbitmq/amqp091-go (via pkg/rabbitmq): Optional events.
 */
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/VII-77/Levqor-9.0-sub003/internal/api"
	"github.com/VII-77/Levqor-9.0-sub003/internal/app"
	"github.com/VII-77/Levqor-9.0-sub003/internal/config"
	"github.com/VII-77/Levqor-9.0-sub003/pkg/backendclient"
	"github.com/VII-77/Levqor-9.0-sub003/pkg/rabbitmq"
	"github.com/VII-77/Levqor-9.0-sub003/pkg/stripeclient"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env file for local development. In production, env vars are set directly.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	// Load application configuration from environment variables
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Outbound clients. The backend client is always required; the payments
	// client is constructed regardless so the handler can report a typed
	// missing-credential error instead of crashing at startup.
	backend := backendclient.NewClient(cfg.APIBaseURL)
	payments := stripeclient.NewClient(cfg.StripeAPIBaseURL, cfg.StripeSecretKey)
	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set, billing verification will report missing_stripe_key")
	}

	// Optional Redis-backed rate limiter for the support endpoints.
	var limiter api.RateLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(opts)
		defer redisClient.Close()
		limiter = app.NewRedisRateLimiter(redisClient, "levqor:rate_limit")
		logger.Info("redis rate limiter enabled")
	} else {
		logger.Info("REDIS_URL not set, support rate limiting disabled")
	}

	// Optional RabbitMQ producer for support-ticket events.
	var publisher api.EventPublisher
	if cfg.RabbitMQURL != "" {
		producer, err := rabbitmq.NewProducer(cfg.RabbitMQURL, cfg.SupportEventExchange)
		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
		publisher = producer
		logger.Info("support event publishing enabled", "exchange", cfg.SupportEventExchange)
	} else {
		logger.Info("RABBITMQ_URL not set, support event publishing disabled")
	}

	// Initialize application layers
	entry := app.NewEntryService(backend, logger)
	handler := api.NewHandler(entry, backend, payments, limiter, publisher, cfg, logger)
	router := api.NewRouter(handler, cfg)

	// Configure and start the HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: router,
	}

	// Set up channel to listen for OS signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for an OS signal
	<-sigCh
	logger.Info("shutdown signal received, gracefully shutting down")

	// Create a context with a timeout for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Attempt to gracefully shut down the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	logger.Info("server stopped")
}
