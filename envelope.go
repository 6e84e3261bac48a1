package sqslambda

import (
	"encoding/json"
	"fmt"
)

// Origin says how the effective payload arrived.
type Origin int

const (
	// OriginDirect means the record body itself was the payload.
	OriginDirect Origin = iota
	// OriginSNS means the payload was unwrapped from a notification envelope.
	OriginSNS
)

// String returns a stable name for the origin, suitable for log fields.
func (o Origin) String() string {
	if o == OriginSNS {
		return "sns"
	}
	return "direct"
}

// DecodeBody parses a raw record body and unwraps a notification envelope
// when one is present. An envelope is any JSON object carrying a string
// field named "Message"; the field's value is then parsed as the effective
// payload. Anything else is treated as a direct payload and returned as is,
// so decoding an already-unwrapped payload is a no-op.
//
// Note the detection is deliberately permissive: the Type discriminator and
// signature fields SNS adds are not required, matching how subscriptions
// with raw message delivery disabled actually behave. A direct payload that
// happens to carry a string "Message" field will be unwrapped.
func DecodeBody(raw string) (Payload, Origin, error) {
	var outer any
	if err := json.Unmarshal([]byte(raw), &outer); err != nil {
		return nil, OriginDirect, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	obj, ok := outer.(map[string]any)
	if !ok {
		return nil, OriginDirect, fmt.Errorf("%w: got %T", ErrPayloadNotObject, outer)
	}

	nested, ok := obj["Message"].(string)
	if !ok {
		return Payload(obj), OriginDirect, nil
	}

	var inner any
	if err := json.Unmarshal([]byte(nested), &inner); err != nil {
		return nil, OriginSNS, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	innerObj, ok := inner.(map[string]any)
	if !ok {
		return nil, OriginSNS, fmt.Errorf("%w: envelope carried %T", ErrPayloadNotObject, inner)
	}
	return Payload(innerObj), OriginSNS, nil
}
