package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable is returned by providers whose capability flag was not
// enabled at startup.
var ErrUnavailable = errors.New("provider not available")

// StatusError reports a non-2xx reply from an inference endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received non-200 status code: %d - %s", e.Code, e.Body)
}

// Request carries everything a provider needs for one generation call.
type Request struct {
	Model       string
	Prompt      string
	ImageB64    string
	Temperature float64
	TopP        float64
	TopK        int
	MaxTokens   int
	// DisableThinking turns off the reasoning preamble on model families
	// that emit one.
	DisableThinking bool
}

// Response is the decoded provider reply. Thinking is the secondary
// reasoning text some model families return alongside (or instead of) the
// primary response.
type Response struct {
	Text     string
	Thinking string
}

// Provider defines the interface for a vision-capable inference backend.
type Provider interface {
	// Name returns the provider name, e.g. "ollama" or "gemini".
	Name() string

	// Generate sends a single prompt+image request and returns the reply.
	Generate(ctx context.Context, req Request) (*Response, error)
}
