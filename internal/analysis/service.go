package analysis

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net"
	"regexp"
	"strings"
	"time"

	"photodiary/internal/config"
	"photodiary/internal/prompts"
	"photodiary/internal/providers"
)

// ImageSource loads image bytes for an opaque image reference (local path
// or URL).
type ImageSource interface {
	Load(ctx context.Context, ref string) ([]byte, error)
}

// Service drives the whole pipeline: prompt assembly, the retrying model
// call, salvage, cleanup, extraction, normalization and validation. It
// holds no per-request state; all collaborators arrive via the
// constructor and are read-only after that, so one Service serves any
// number of concurrent requests.
type Service struct {
	cfg        *config.Config
	provider   providers.Provider
	templates  prompts.Store
	images     ImageSource
	history    *History
	thresholds Thresholds
	// sleep is swapped out in tests to avoid real retry delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService wires the pipeline together. Every collaborator is explicit;
// nothing is reached through package-level state.
func NewService(cfg *config.Config, provider providers.Provider, templates prompts.Store, images ImageSource, history *History) *Service {
	return &Service{
		cfg:       cfg,
		provider:  provider,
		templates: templates,
		images:    images,
		history:   history,
		thresholds: Thresholds{
			MinDescriptionChars:  cfg.MinValidDescription,
			GoodDescriptionChars: cfg.GoodDescriptionChars,
			MinObjects:           DefaultThresholds().MinObjects,
			MinTags:              DefaultThresholds().MinTags,
			MinConfidence:        DefaultThresholds().MinConfidence,
		},
		sleep: sleepCtx,
	}
}

// familyOptions is per-model-family invocation policy: sampling tuning and
// whether to suppress the reasoning preamble. Matched by model name
// prefix, first hit wins.
type familyOptions struct {
	prefix          string
	temperature     float64
	topP            float64
	topK            int
	disableThinking bool
}

var modelFamilies = []familyOptions{
	{prefix: "qwen3", temperature: 0.7, topP: 0.8, topK: 20, disableThinking: true},
	{prefix: "deepseek-r1", temperature: 0.6, topP: 0.95, disableThinking: true},
	{prefix: "qwen2.5vl", temperature: 0.7, topP: 0.9},
	{prefix: "llava", temperature: 0.8, topP: 0.9},
	{prefix: "gemma3", temperature: 0.7, topP: 0.95, topK: 64},
}

var defaultFamily = familyOptions{temperature: 0.7, topP: 0.9}

func optionsForModel(model string) familyOptions {
	for _, f := range modelFamilies {
		if strings.HasPrefix(model, f.prefix) {
			return f
		}
	}
	return defaultFamily
}

// Structured section markers that make secondary reasoning text worth
// salvaging: a heading, a bold span, or a numbered section line.
var structuredMarkerPattern = regexp.MustCompile(`(?m)^#{1,6}\s|\*\*.+?\*\*|^\s*\d+[.)]\s`)

func hasStructuredMarkers(text string) bool {
	return structuredMarkerPattern.MatchString(text)
}

// Analyze converts one request into an AnalysisRecord. Transport failures
// either produce a fallback record (AllowFallback) or surface as an
// *InvokeError; content failures are absorbed into a placeholder record.
// The returned record is always fully populated.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisRecord, error) {
	start := time.Now()

	model := s.selectModel(req)
	family := optionsForModel(model)
	prompt := BuildPrompt(s.templates, req, model)

	imageData, err := s.images.Load(ctx, req.ImagePath)
	if err != nil {
		return s.terminalFailure(req, model, start, 0, &InvokeError{Kind: KindOther, Err: err})
	}
	imageB64 := base64.StdEncoding.EncodeToString(imageData)

	slog.Info("Starting photo analysis",
		"model", model,
		"image", req.ImagePath,
		"payload_bytes", len(imageB64),
		"prompt_chars", len(prompt),
		"detailed", req.Detailed)

	preq := providers.Request{
		Model:           model,
		Prompt:          prompt,
		ImageB64:        imageB64,
		Temperature:     family.temperature,
		TopP:            family.topP,
		TopK:            family.topK,
		MaxTokens:       1024,
		DisableThinking: family.disableThinking,
	}

	text := ""
	attempts := 0
	for attempts < s.cfg.MaxAttempts {
		attempts++
		attemptStart := time.Now()

		resp, err := s.provider.Generate(ctx, preq)
		if err != nil {
			// Transport failures are terminal for the whole
			// invocation, they never consume the content retry
			// budget.
			return s.terminalFailure(req, model, start, attempts, classifyInvokeError(err))
		}

		text = resp.Text
		if strings.TrimSpace(text) == "" && resp.Thinking != "" && hasStructuredMarkers(resp.Thinking) {
			slog.Info("Salvaging reasoning text for empty response", "model", model, "thinking_chars", len(resp.Thinking))
			text = resp.Thinking
		}

		slog.Info("Model responded",
			"model", model,
			"attempt", attempts,
			"chars", len(text),
			"ms", time.Since(attemptStart).Milliseconds())

		if len(strings.TrimSpace(text)) >= s.cfg.MinUsableChars {
			break
		}

		if attempts < s.cfg.MaxAttempts {
			slog.Warn("Response too short, retrying", "model", model, "attempt", attempts, "chars", len(text))
			if err := s.sleep(ctx, s.cfg.RetryDelay); err != nil {
				return s.terminalFailure(req, model, start, attempts, classifyInvokeError(err))
			}
		}
	}

	if len(strings.TrimSpace(text)) < s.cfg.MinUsableChars {
		slog.Warn("All attempts produced unusable text, using placeholder", "model", model, "attempts", attempts)
		text = ""
	}

	record := Extract(Clean(text))
	record.Tags = NormalizeTags(record.Tags)
	record.ProcessingTimeMS = time.Since(start).Milliseconds()
	record.ModelVersion = model

	if valid, warnings := Validate(record, s.thresholds); !valid || len(warnings) > 0 {
		slog.Info("Record quality", "valid", valid, "warnings", strings.Join(warnings, "; "))
	}

	s.recordRun(model, attempts, record, false)
	return record, nil
}

// selectModel applies the precedence: explicit override, then the detail
// flag choosing between the deep and fast variants.
func (s *Service) selectModel(req AnalysisRequest) string {
	if req.Model != "" {
		return req.Model
	}
	if req.Detailed {
		return s.cfg.ModelDeep
	}
	return s.cfg.ModelFast
}

// terminalFailure applies the fallback policy for failures the retry loop
// cannot recover.
func (s *Service) terminalFailure(req AnalysisRequest, model string, start time.Time, attempts int, invErr *InvokeError) (*AnalysisRecord, error) {
	elapsed := time.Since(start).Milliseconds()
	slog.Error("Model invocation failed",
		"model", model,
		"kind", string(invErr.Kind),
		"status", invErr.Status,
		"attempts", attempts,
		"ms", elapsed,
		"err", invErr.Err)

	if !req.AllowFallback {
		return nil, invErr
	}

	record := FallbackRecord(elapsed)
	s.recordRun(model, attempts, record, true)
	return record, nil
}

func (s *Service) recordRun(model string, attempts int, record *AnalysisRecord, fallback bool) {
	if s.history == nil {
		return
	}
	s.history.Add(RunMetric{
		Timestamp:  time.Now(),
		Model:      model,
		Attempts:   attempts,
		DurationMS: record.ProcessingTimeMS,
		Confidence: record.Confidence,
		Fallback:   fallback,
	})
}

// classifyInvokeError maps a transport error onto the error taxonomy.
func classifyInvokeError(err error) *InvokeError {
	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		return &InvokeError{Kind: KindHTTP, Status: statusErr.Code, Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &InvokeError{Kind: KindTimeout, Err: err}
	}

	return &InvokeError{Kind: KindOther, Err: err}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
