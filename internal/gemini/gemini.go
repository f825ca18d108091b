// Package gemini implements the providers.Provider interface against the
// Google Gemini API. It is only constructed when the Gemini capability flag
// is enabled at startup; the nil-safe wrapper returns
// providers.ErrUnavailable otherwise.
package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"photodiary/internal/providers"
)

// Gemini is a provider for Google Gemini vision models.
type Gemini struct {
	apiKey  string
	enabled bool
}

// New returns a new Gemini provider. When enabled is false every call
// returns providers.ErrUnavailable instead of attempting a request.
func New(apiKey string, enabled bool) *Gemini {
	return &Gemini{apiKey: apiKey, enabled: enabled}
}

// Name returns the provider name.
func (g *Gemini) Name() string { return "gemini" }

// Generate sends a prompt plus image to Gemini and returns the reply text.
func (g *Gemini) Generate(ctx context.Context, preq providers.Request) (*providers.Response, error) {
	if !g.enabled {
		return nil, providers.ErrUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(preq.Model)
	model.SetTemperature(float32(preq.Temperature))
	if preq.TopP > 0 {
		model.SetTopP(float32(preq.TopP))
	}
	if preq.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(preq.MaxTokens))
	}

	parts := []genai.Part{genai.Text(preq.Prompt)}
	if preq.ImageB64 != "" {
		imageData, err := base64.StdEncoding.DecodeString(preq.ImageB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image payload: %w", err)
		}
		parts = append(parts, genai.ImageData("jpeg", imageData))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return &providers.Response{Text: string(txt)}, nil
	}

	return nil, fmt.Errorf("unexpected response format from Gemini")
}
