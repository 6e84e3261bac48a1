package failure

import "context"

// DropMalformedPolicy acknowledges structurally broken records instead of
// reporting them, so unparseable messages do not cycle through redrive into
// the dead-letter queue. Processor failures are still reported for redrive.
type DropMalformedPolicy struct{}

// Decide implements DropMalformedPolicy behavior.
func (p DropMalformedPolicy) Decide(_ context.Context, kind Kind, inner error, current Result) Result {
	switch {
	case kind == FailNone:
		return current
	case kind.Structural():
		current.Report = false
	default:
		current.Report = true
	}
	if inner != nil && current.Error == nil {
		current.Error = inner
	}
	return current
}
