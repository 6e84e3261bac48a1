package sqslambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
)

// Payload is the effective JSON object handed to a Processor after the
// record body has been parsed and any notification envelope unwrapped.
type Payload map[string]any

// Processor is the business-logic unit invoked once per record with the
// effective payload and a logger scoped to that record. Returning a non-nil
// error marks the record failed; the batch handler never retries, it only
// reports the failure so the broker can redeliver.
//
// Implementations must be synchronous: the handler waits for Process to
// return before deciding the record's disposition.
type Processor interface {
	Process(ctx context.Context, payload Payload, logger zerolog.Logger) error
}

// ProcessorFunc adapts a plain function to the Processor interface.
type ProcessorFunc func(ctx context.Context, payload Payload, logger zerolog.Logger) error

// Process implements Processor.
func (f ProcessorFunc) Process(ctx context.Context, payload Payload, logger zerolog.Logger) error {
	return f(ctx, payload, logger)
}

// RecordFunc is the per-record processing function wrapped by middlewares.
// It sees the original record alongside the decoded payload so middlewares
// can read delivery metadata without re-parsing the body.
type RecordFunc func(ctx context.Context, record events.SQSMessage, payload Payload, logger zerolog.Logger) error

// Middleware composes cross-cutting concerns around record processing,
// forming a chain of RecordFunc. Typical use cases: timing, delivery
// metadata logging, tracing.
type Middleware func(next RecordFunc) RecordFunc
