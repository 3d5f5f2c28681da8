package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
// A missing .env file is not an error; the process environment still applies.
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for the application
type Config struct {
	Instrument  string            `env:"INSTRUMENT" envDefault:"BTC-USD"` // Single traded instrument, e.g. BTC-USD
	LogLevel    string            `env:"LOG_LEVEL" envDefault:"info"`
	Input       string            `env:"INPUT" envDefault:""`        // Command file path; empty reads stdin
	Transport   string            `env:"TRANSPORT" envDefault:"csv"` // csv | kafka
	KafkaSource KafkaSourceConfig `envPrefix:"KAFKA_SOURCE_"`        // Kafka command stream
	KafkaSink   KafkaSinkConfig   `envPrefix:"KAFKA_SINK_"`          // Kafka record stream
}

// KafkaSourceConfig holds the configuration for the Kafka command consumer.
type KafkaSourceConfig struct {
	Topic   string   `env:"TOPIC" envDefault:"commands"`
	GroupID string   `env:"GROUP_ID" envDefault:"default_group"`
	Brokers []string `env:"BROKER"`
}

// KafkaSinkConfig holds the configuration for the Kafka record publisher.
type KafkaSinkConfig struct {
	Topic   string   `env:"TOPIC" envDefault:"records"`
	Brokers []string `env:"BROKER"`
}
