package sqslambda

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// StubProcessor is the placeholder business-logic unit wired by the
// template. It exists so the pipeline can be exercised end to end before any
// domain code is written; integrators replace it with their own Processor.
//
// A payload carrying "shouldFail": true fails intentionally. This is a test
// seam for verifying the redrive path, not production logic.
type StubProcessor struct {
	// Delay simulates domain work before the outcome is decided.
	Delay time.Duration
}

// Process implements the Processor interface.
func (s *StubProcessor) Process(ctx context.Context, payload Payload, logger zerolog.Logger) error {
	if payload == nil {
		return ErrPayloadNotObject
	}

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if shouldFail, _ := payload["shouldFail"].(bool); shouldFail {
		return ErrIntentionalFailure
	}

	logger.Debug().Int("fields", len(payload)).Msg("stub processed payload")
	return nil
}
