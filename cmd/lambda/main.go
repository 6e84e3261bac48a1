package main

import (
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	"github.com/hatsunemiku3939/sqslambda"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "sqslambda").Logger()

	cfg, err := sqslambda.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
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

	lambda.Start(handler.Handle)
}
