package analysis

import "fmt"

// ErrorKind classifies invocation failures for callers that disable the
// fallback record. Batch and evaluation tooling uses the kind to separate
// infrastructure failures from content failures.
type ErrorKind string

const (
	KindTimeout ErrorKind = "timeout"
	KindHTTP    ErrorKind = "http"
	KindOther   ErrorKind = "other"
)

// InvokeError is returned by Analyze when the model call fails and the
// request did not allow a fallback record.
type InvokeError struct {
	Kind   ErrorKind
	Status int // HTTP status for KindHTTP, zero otherwise
	Err    error
}

func (e *InvokeError) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("model invocation failed (%s, status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("model invocation failed (%s): %v", e.Kind, e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }
