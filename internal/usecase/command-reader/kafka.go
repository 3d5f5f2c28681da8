package commandreader

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	commandv1 "github.com/lfordyce/orderbook/internal/domain/command/v1"
	"github.com/lfordyce/orderbook/pkg/config"
	"github.com/lfordyce/orderbook/pkg/logger"
)

// KafkaReader consumes JSON-encoded commands from the command topic.
type KafkaReader struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface
}

// NewKafkaReader creates a consumer over the configured command topic.
func NewKafkaReader(cfg config.KafkaSourceConfig, log logger.Interface) *KafkaReader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})

	return &KafkaReader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// logError is a helper method to log errors consistently
func (r *KafkaReader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.Field{Key: "error", Value: err.Error()},
		logger.Field{Key: "operation", Value: operation},
	)
}

// Read reads one message from the command topic and decodes it. Messages
// that fail to decode are logged and skipped.
func (r *KafkaReader) Read(ctx context.Context) (commandv1.Command, error) {
	for {
		msg, err := r.kafkaReader.ReadMessage(ctx)
		if err != nil {
			r.logError(err, "ReadMessage")
			return commandv1.Command{}, err
		}

		var cmd commandv1.Command
		if err := json.Unmarshal(msg.Value, &cmd); err != nil {
			r.logError(err, "UnmarshalCommand")
			continue
		}
		if cmd.Kind == commandv1.KindUnknown {
			r.logger.Warn("skipping message without command kind",
				logger.Field{Key: "offset", Value: msg.Offset},
			)
			continue
		}

		return cmd, nil
	}
}

// Close properly closes the Kafka reader.
func (r *KafkaReader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(err, "Close")
		return err
	}
	return nil
}
