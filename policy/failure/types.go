package failure

import "context"

// Kind enumerates where in the per-record pipeline a failure occurred.
type Kind int

const (
	// FailNone indicates no failure occurred.
	FailNone Kind = iota
	// FailBodyParse indicates the record body could not be parsed as JSON.
	FailBodyParse
	// FailEnvelopeParse indicates the nested notification message could not be parsed as JSON.
	FailEnvelopeParse
	// FailPrecondition indicates the effective payload is missing or not a JSON object.
	FailPrecondition
	// FailPayloadSchema indicates the effective payload failed its registered schema validation.
	FailPayloadSchema
	// FailIntentional indicates the processor's designated test-failure condition was met.
	FailIntentional
	// FailProcessor indicates the processor returned any other non-nil error.
	FailProcessor
	// FailProcessorPanic indicates a panic occurred inside the processor.
	FailProcessorPanic
)

// String returns a stable name for the failure kind, suitable for log fields.
func (k Kind) String() string {
	switch k {
	case FailNone:
		return "none"
	case FailBodyParse:
		return "body_parse"
	case FailEnvelopeParse:
		return "envelope_parse"
	case FailPrecondition:
		return "precondition"
	case FailPayloadSchema:
		return "payload_schema"
	case FailIntentional:
		return "intentional"
	case FailProcessor:
		return "processor"
	case FailProcessorPanic:
		return "processor_panic"
	default:
		return "unknown"
	}
}

// Structural reports whether the failure is caused by the shape of the
// message itself. A structural failure cannot succeed on redelivery.
func (k Kind) Structural() bool {
	switch k {
	case FailBodyParse, FailEnvelopeParse, FailPrecondition, FailPayloadSchema:
		return true
	default:
		return false
	}
}

// Result represents the disposition decision for a failed record.
type Result struct {
	// Report is true if the record should appear in the batch failure report,
	// leaving it on the queue for the broker's redrive policy.
	Report bool
	// Error is the error attached to the disposition for logging.
	Error error
}

// Policy decides the final Result given a failure classification and the
// current decision made by the processing pipeline.
type Policy interface {
	Decide(ctx context.Context, kind Kind, inner error, current Result) Result
}
