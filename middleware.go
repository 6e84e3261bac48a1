package sqslambda

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
)

// TimingMiddleware logs the wall-clock duration of each record's processing.
func TimingMiddleware() Middleware {
	return func(next RecordFunc) RecordFunc {
		return func(ctx context.Context, record events.SQSMessage, payload Payload, logger zerolog.Logger) error {
			start := time.Now()
			err := next(ctx, record, payload, logger)
			logger.Debug().Dur("duration", time.Since(start)).Msg("record timing")
			return err
		}
	}
}

// DeliveryLogMiddleware logs the record's delivery metadata. The receive
// count is the only view this code has into the broker's retry progress, so
// surface it on every attempt.
func DeliveryLogMiddleware() Middleware {
	return func(next RecordFunc) RecordFunc {
		return func(ctx context.Context, record events.SQSMessage, payload Payload, logger zerolog.Logger) error {
			evt := logger.Debug().Str("event_source", record.EventSourceARN)
			if rc, ok := record.Attributes["ApproximateReceiveCount"]; ok {
				if n, err := strconv.Atoi(rc); err == nil {
					evt = evt.Int("receive_count", n)
				}
			}
			if ts, ok := record.Attributes["SentTimestamp"]; ok {
				evt = evt.Str("sent_timestamp", ts)
			}
			evt.Msg("record delivery")
			return next(ctx, record, payload, logger)
		}
	}
}
