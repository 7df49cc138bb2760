// Package kafka publishes normalized plant records to a sink topic for
// downstream consumers. Publishing is feature-flagged: the service runs fully
// without brokers configured.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Leonidas-cyber/energia-Mexico/internal/config"
	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
)

// Writer produces plant records to the configured sink topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishBatch serializes and publishes records in a single WriteMessages
// call. Records are keyed by plant ID so re-ingested plants land on the same
// partition.
func (w *Writer) PublishBatch(ctx context.Context, records []domain.PlantRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publishing %d plant records: %w", len(records), err)
	}
	w.logger.Debug("published plant records", "count", len(records))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a PlantRecord into a Kafka message.
func serializeToMessage(record domain.PlantRecord) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize plant record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(record.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "energy_category", Value: []byte(record.Category)},
			{Key: "source_origin", Value: []byte(record.Origin)},
			{Key: "ingested_at", Value: []byte(record.IngestedAt.Format(time.RFC3339))},
		},
	}, nil
}
