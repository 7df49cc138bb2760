package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/Leonidas-cyber/energia-Mexico/internal/adapter/http"
	kafkaadapter "github.com/Leonidas-cyber/energia-Mexico/internal/adapter/kafka"
	"github.com/Leonidas-cyber/energia-Mexico/internal/catalog"
	"github.com/Leonidas-cyber/energia-Mexico/internal/config"
	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
	"github.com/Leonidas-cyber/energia-Mexico/internal/observability"
	"github.com/Leonidas-cyber/energia-Mexico/internal/patterns"
	"github.com/Leonidas-cyber/energia-Mexico/internal/pipeline"
	"github.com/Leonidas-cyber/energia-Mexico/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	patternStore := patterns.NewStore(cfg.PatternsPath, logger)
	metrics.PatternsActive.Set(float64(len(patternStore.Patterns())))

	recordStore := store.New()
	ingestor := pipeline.New(&http.Client{Timeout: cfg.FetchTimeout}, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the bundled dataset; fall back to the embedded catalog so the API
	// always has data to serve.
	records, err := ingestor.IngestSource(ctx, cfg.DefaultCSV, domain.OriginBundledCSV)
	if err != nil {
		logger.Warn("default csv unavailable, loading embedded catalog", "source", cfg.DefaultCSV, "error", err)
		records = catalog.Records(patternStore.Classifier())
		for range records {
			metrics.RecordsIngested.WithLabelValues(string(domain.OriginCatalog)).Inc()
		}
	}
	recordStore.Replace(records)
	metrics.PlantsLoaded.Set(float64(recordStore.Len()))
	logger.Info("initial dataset loaded", "plants", recordStore.Len())

	// Publish the initial dataset when a Kafka sink is configured.
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		logger.Info("kafka sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
		if err := writer.PublishBatch(ctx, records); err != nil {
			logger.Error("publishing initial dataset failed", "error", err)
		}
	} else {
		logger.Info("kafka sink disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, recordStore, ingestor, patternStore, metrics, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
