// Package ollama implements the providers.Provider interface against a
// local Ollama HTTP endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"photodiary/internal/providers"
)

// Ollama is a provider for a local Ollama server.
type Ollama struct {
	baseURL string
	client  *http.Client
}

// New returns a new Ollama provider. The dial timeout guards against an
// unreachable server; the total timeout is much longer because vision
// inference on local hardware can take minutes.
func New(baseURL string, connectTimeout, totalTimeout time.Duration) *Ollama {
	return &Ollama{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: totalTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
	}
}

// Name returns the provider name.
func (o *Ollama) Name() string { return "ollama" }

// Generate sends a single non-streaming generation request to /api/generate.
func (o *Ollama) Generate(ctx context.Context, preq providers.Request) (*providers.Response, error) {
	options := map[string]interface{}{
		"temperature": preq.Temperature,
	}
	if preq.TopP > 0 {
		options["top_p"] = preq.TopP
	}
	if preq.TopK > 0 {
		options["top_k"] = preq.TopK
	}
	if preq.MaxTokens > 0 {
		options["num_predict"] = preq.MaxTokens
	}

	body := map[string]interface{}{
		"model":   preq.Model,
		"prompt":  preq.Prompt,
		"stream":  false,
		"options": options,
	}
	if preq.ImageB64 != "" {
		body["images"] = []string{preq.ImageB64}
	}
	if preq.DisableThinking {
		body["think"] = false
	}

	requestBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/generate", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &providers.StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var decoded struct {
		Response string `json:"response"`
		Thinking string `json:"thinking"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &providers.Response{
		Text:     decoded.Response,
		Thinking: decoded.Thinking,
	}, nil
}
