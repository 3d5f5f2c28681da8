package recordpublisher

import (
	"context"

	"github.com/segmentio/kafka-go"

	recordv1 "github.com/lfordyce/orderbook/internal/domain/record/v1"
	"github.com/lfordyce/orderbook/pkg/config"
	"github.com/lfordyce/orderbook/pkg/errors"
	"github.com/lfordyce/orderbook/pkg/logger"
)

// KafkaWriter publishes type-tagged JSON record envelopes to the record
// topic.
type KafkaWriter struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// NewKafkaWriter creates a publisher over the configured record topic.
func NewKafkaWriter(cfg config.KafkaSinkConfig, log logger.Interface) *KafkaWriter {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &KafkaWriter{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// Publish encodes the record into its envelope and writes it.
func (w *KafkaWriter) Publish(ctx context.Context, record recordv1.Record) error {
	value, err := recordv1.Encode(record)
	if err != nil {
		w.logger.Error(err,
			logger.Field{Key: "record", Value: record.Label()},
		)
		return errors.NewTracer("failed to encode record")
	}

	if err := w.kafkaWriter.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		w.logger.Error(err,
			logger.Field{Key: "error", Value: err.Error()},
			logger.Field{Key: "record", Value: record.Label()},
		)
		return errors.NewTracer("failed to publish record")
	}
	return nil
}

// Flush is a no-op; WriteMessages is synchronous.
func (w *KafkaWriter) Flush() error {
	return nil
}

// Close properly closes the Kafka writer.
func (w *KafkaWriter) Close() error {
	return w.kafkaWriter.Close()
}
