// Package main is the entry point for the next-permutation API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"nextperm/internal/domain/permutation"
	v1 "nextperm/internal/infrastructure/http/v1"
	"nextperm/internal/infrastructure/http/v1/handlers"
	"nextperm/internal/infrastructure/metrics"
	"nextperm/pkg/logger"
)

const (
	appName    = "nextperm"
	appVersion = "0.1.0"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
		Fields:      map[string]any{"app": appName, "version": appVersion},
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting nextperm server")

	// --- Metrics ---
	var m *metrics.Metrics
	var recorder permutation.Recorder
	if getEnv("METRICS_ENABLED", "true") == "true" {
		m = metrics.New()
		recorder = m
	}

	// --- Router ---
	health := handlers.NewHealthHandler(appName, appVersion)
	router := v1.NewRouter(v1.RouterConfig{
		Logger:      log,
		Permutation: permutation.NewService(recorder),
		Health:      health,
		Metrics:     m,
	})

	handler, err := newHandler(router, getEnv("GZIP_ENABLED", "true") == "true", getEnvInt("GZIP_MIN_SIZE", 0))
	if err != nil {
		log.Fatalw("failed to configure compression", "error", err)
	}

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}

	go func() {
		log.Infow("server starting", "port", port, "metrics", m != nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	health.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// newHandler wraps router with gzip compression when enabled.
// Responses smaller than minSize bytes are sent uncompressed.
func newHandler(router http.Handler, gzip bool, minSize int) (http.Handler, error) {
	if !gzip {
		return router, nil
	}
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(minSize))
	if err != nil {
		return nil, err
	}
	return wrap(router), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
