package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"itemcompare/internal/commons"
	"itemcompare/internal/infrastructure/logger"
	"itemcompare/internal/infrastructure/metrics"
	"itemcompare/internal/product"
	"itemcompare/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	productModule := product.NewModule(product.SourceFor(cfg.Catalog.File), zapLogger)

	// a partial catalog is never served
	if err := productModule.Loader.Run(context.Background()); err != nil {
		zapLogger.Fatal("loading product catalog", zap.String("catalogFile", cfg.Catalog.File), zap.Error(err))
	}

	var httpMetrics *metrics.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = metrics.New()
	}

	router := server.NewRouter(productModule.Controller, httpMetrics, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
