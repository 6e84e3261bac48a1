// Command sqspoller runs the batch handler against a live SQS queue without
// Lambda. It reproduces the event source mapping's partial batch response
// behavior locally: successes are deleted, failures stay for redrive.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog"

	"github.com/hatsunemiku3939/sqslambda"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("service", "sqspoller").Logger()

	cfg, err := sqslambda.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.QueueURL == "" {
		logger.Fatal().Msg("QUEUE_URL is required to poll")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	handler := sqslambda.NewHandler(
		&sqslambda.StubProcessor{Delay: 50 * time.Millisecond},
		cfg,
		sqslambda.WithLogger(logger),
		sqslambda.WithMiddleware(
			sqslambda.TimingMiddleware(),
			sqslambda.DeliveryLogMiddleware(),
		),
	)

	sqslambda.NewPoller(sqs.NewFromConfig(awsCfg), cfg.QueueURL, handler, logger).Start(ctx)
}
