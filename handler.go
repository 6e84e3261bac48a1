package sqslambda

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"

	"github.com/hatsunemiku3939/sqslambda/pkg/jsonschema"
	failure "github.com/hatsunemiku3939/sqslambda/policy/failure"
)

// Handler processes SQS event batches and produces a partial batch failure
// response. Records are processed independently and sequentially: a failure
// in one record never stops, skips, or affects the disposition of another.
// Retry, backoff and dead-lettering are owned entirely by the queue's
// redrive policy; the handler only reports which records failed.
type Handler struct {
	processor   Processor
	cfg         Config
	logger      zerolog.Logger
	policy      failure.Policy
	schema      *jsonschema.Schema
	middlewares []Middleware
}

// NewHandler creates a batch handler around the given processor. The config
// only enriches log context; missing values never gate processing.
func NewHandler(processor Processor, cfg Config, opts ...Option) *Handler {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	h := &Handler{
		processor: processor,
		cfg:       cfg,
		logger:    zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger(),
		policy:    failure.SQSRedrivePolicy{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle implements the Lambda SQS invocation contract. It returns the
// identifiers of failed records in encounter order; records absent from the
// response are acknowledged by the event source mapping. The returned error
// is always nil for per-record failures — only a defect outside the record
// loop may propagate and fail the whole invocation.
func (h *Handler) Handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	logger := h.invocationLogger(ctx)
	logger.Info().Int("records", len(event.Records)).Msg("batch received")

	failures := make([]events.SQSBatchItemFailure, 0)
	for _, record := range event.Records {
		kind, err := h.processRecord(ctx, record, logger)
		if kind == failure.FailNone {
			continue
		}

		res := h.policy.Decide(ctx, kind, err, failure.Result{Report: true, Error: err})
		recLogger := logger.With().Str("message_id", record.MessageId).Stringer("failure_kind", kind).Logger()
		if res.Report {
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			recLogger.Error().Err(res.Error).Msg("record failed, left for redrive")
		} else {
			recLogger.Warn().Err(res.Error).Msg("record failed, acknowledged without processing")
		}
	}

	logger.Info().Int("failed", len(failures)).Msg("batch complete")
	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}

// processRecord runs the parse → unwrap → validate → process pipeline for a
// single record and classifies any failure. Every error is contained here;
// nothing escapes to abort the batch.
func (h *Handler) processRecord(ctx context.Context, record events.SQSMessage, logger zerolog.Logger) (failure.Kind, error) {
	recLogger := logger.With().Str("message_id", record.MessageId).Logger()
	recLogger.Debug().Msg("record received")

	payload, origin, err := DecodeBody(record.Body)
	if err != nil {
		switch {
		case errors.Is(err, ErrMalformedBody):
			return failure.FailBodyParse, err
		case errors.Is(err, ErrMalformedEnvelope):
			return failure.FailEnvelopeParse, err
		default:
			return failure.FailPrecondition, err
		}
	}
	recLogger.Debug().Stringer("origin", origin).Msg("record decoded")

	if h.schema != nil {
		if err := h.schema.Validate(map[string]any(payload)); err != nil {
			return failure.FailPayloadSchema, err
		}
	}

	recLogger.Info().Msg("processing record")
	if err := h.dispatch(ctx, record, payload, recLogger); err != nil {
		return classify(err), err
	}
	recLogger.Info().Msg("record processed")
	return failure.FailNone, nil
}

// dispatch runs the middleware-wrapped processor, converting panics into
// errors so one panicking record cannot take down the batch.
func (h *Handler) dispatch(ctx context.Context, record events.SQSMessage, payload Payload, logger zerolog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProcessorPanic, r)
		}
	}()

	fn := RecordFunc(func(ctx context.Context, _ events.SQSMessage, payload Payload, logger zerolog.Logger) error {
		return h.processor.Process(ctx, payload, logger)
	})
	for i := len(h.middlewares) - 1; i >= 0; i-- {
		fn = h.middlewares[i](fn)
	}
	return fn(ctx, record, payload, logger)
}

// classify maps a processor error onto the failure taxonomy.
func classify(err error) failure.Kind {
	switch {
	case errors.Is(err, ErrProcessorPanic):
		return failure.FailProcessorPanic
	case errors.Is(err, ErrIntentionalFailure):
		return failure.FailIntentional
	case errors.Is(err, ErrPayloadNotObject):
		return failure.FailPrecondition
	default:
		return failure.FailProcessor
	}
}

// invocationLogger scopes the handler logger to the current invocation,
// attaching the request id and function identity when running under Lambda
// plus the deployment wiring from config.
func (h *Handler) invocationLogger(ctx context.Context) zerolog.Logger {
	logCtx := h.logger.With()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logCtx = logCtx.Str("invocation_id", lc.AwsRequestID).Str("function", lc.InvokedFunctionArn)
	}
	if h.cfg.Environment != "" {
		logCtx = logCtx.Str("environment", h.cfg.Environment)
	}
	if h.cfg.QueueURL != "" {
		logCtx = logCtx.Str("queue", h.cfg.QueueURL)
	}
	if h.cfg.TopicARN != "" {
		logCtx = logCtx.Str("topic", h.cfg.TopicARN)
	}
	if h.cfg.DLQURL != "" {
		logCtx = logCtx.Str("dlq", h.cfg.DLQURL)
	}
	return logCtx.Logger()
}
