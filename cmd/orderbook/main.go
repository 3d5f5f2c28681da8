package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	app "github.com/lfordyce/orderbook/internal/app/engine"
	commandv1 "github.com/lfordyce/orderbook/internal/domain/command/v1"
	recordv1 "github.com/lfordyce/orderbook/internal/domain/record/v1"
	commandreader "github.com/lfordyce/orderbook/internal/usecase/command-reader"
	"github.com/lfordyce/orderbook/internal/usecase/orderbook"
	recordpublisher "github.com/lfordyce/orderbook/internal/usecase/record-publisher"
	"github.com/lfordyce/orderbook/pkg/config"
	"github.com/lfordyce/orderbook/pkg/errors"
	"github.com/lfordyce/orderbook/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}

	// Logs go to stderr so stdout stays a clean record stream.
	l, err := logger.NewLogger(
		logger.WithOutputPaths([]string{"stderr"}),
		logger.WithLoggingLevel(logger.Level(cfg.LogLevel)),
	)
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	input := flag.String("input", cfg.Input, "command file path; empty reads stdin")
	transport := flag.String("transport", cfg.Transport, "command transport: csv | kafka")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, sink, err := buildTransport(*transport, *input)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "build_transport",
		})
		os.Exit(1)
	}
	defer source.Close()
	defer sink.Close()

	engine := app.NewEngine(orderbook.NewOrderbook(), source, sink, log)

	log.Info("order book engine started", logger.Field{
		Key:   "instrument",
		Value: cfg.Instrument,
	}, logger.Field{
		Key:   "transport",
		Value: *transport,
	})

	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "run_engine",
		})
		os.Exit(1)
	}

	log.Info("command stream complete")
}

func buildTransport(transport, input string) (commandv1.Source, recordv1.Sink, error) {
	switch transport {
	case "kafka":
		source := commandreader.NewKafkaReader(cfg.KafkaSource, log)
		sink := recordpublisher.NewKafkaWriter(cfg.KafkaSink, log)
		return source, sink, nil

	default:
		var in io.Reader = os.Stdin
		var closer io.Closer
		if input != "" {
			f, err := os.Open(input)
			if err != nil {
				return nil, nil, err
			}
			in = f
			closer = f
		}
		source := commandreader.NewCSVReader(in, closer, log)
		sink := recordpublisher.NewCSVWriter(os.Stdout, nil)
		return source, sink, nil
	}
}
