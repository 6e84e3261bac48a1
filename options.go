package sqslambda

import (
	"github.com/rs/zerolog"

	"github.com/hatsunemiku3939/sqslambda/pkg/jsonschema"
	failure "github.com/hatsunemiku3939/sqslambda/policy/failure"
)

// Option configures a Handler at construction time.
type Option func(*Handler)

// WithLogger replaces the default stdout logger. The handler derives
// invocation- and record-scoped child loggers from it.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithFailurePolicy sets a custom disposition policy for failed records.
// The default is failure.SQSRedrivePolicy: every failure is reported so the
// queue's redrive policy owns retries and dead-lettering.
func WithFailurePolicy(p failure.Policy) Option {
	return func(h *Handler) { h.policy = p }
}

// WithPayloadSchema validates every effective payload against a compiled
// JSON schema before the processor runs. Validation failures are reported
// like any other record failure. Off by default.
func WithPayloadSchema(s *jsonschema.Schema) Option {
	return func(h *Handler) { h.schema = s }
}

// WithMiddleware appends middlewares around the processor call, applied in
// the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(h *Handler) { h.middlewares = append(h.middlewares, mw...) }
}
