package sqslambda

import "errors"

var (
	// ErrMalformedBody indicates a record body that is not valid JSON.
	ErrMalformedBody = errors.New("record body is not valid JSON")
	// ErrMalformedEnvelope indicates a notification envelope whose nested
	// message is not valid JSON.
	ErrMalformedEnvelope = errors.New("nested notification message is not valid JSON")
	// ErrPayloadNotObject indicates an effective payload that is missing or
	// not a JSON object.
	ErrPayloadNotObject = errors.New("effective payload is not a JSON object")
	// ErrIntentionalFailure is returned by the stub processor when a payload
	// carries the designated test-failure flag.
	ErrIntentionalFailure = errors.New("payload requested intentional failure")
	// ErrProcessorPanic wraps a panic recovered from a processor.
	ErrProcessorPanic = errors.New("processor panicked")
)
