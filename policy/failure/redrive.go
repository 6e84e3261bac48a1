package failure

import "context"

// SQSRedrivePolicy reports every failure so SQS redrive handles retries/DLQ.
type SQSRedrivePolicy struct{}

// Decide implements the Policy interface for SQS redrive delegation.
func (p SQSRedrivePolicy) Decide(_ context.Context, kind Kind, inner error, current Result) Result {
	if kind == FailNone {
		return current
	}
	current.Report = true
	if inner != nil && current.Error == nil {
		current.Error = inner
	}
	return current
}
