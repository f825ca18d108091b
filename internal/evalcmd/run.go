package evalcmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"photodiary/internal/analysis"
	"photodiary/internal/config"
	"photodiary/internal/eval/dataset"
	"photodiary/internal/eval/metrics"
	"photodiary/internal/eval/results"
	"photodiary/internal/gemini"
	"photodiary/internal/images"
	"photodiary/internal/ollama"
	"photodiary/internal/prompts"
	"photodiary/internal/providers"
)

func executeRun(ctx context.Context, datasetPath, providerName, model string, sampleSize, concurrency int, offline bool) error {
	slog.Info("Starting evaluation run", "dataset", datasetPath, "provider", providerName, "model", model, "offline", offline)

	cfg := config.Load()
	if model == "" {
		model = cfg.ModelFast
	}

	loader := dataset.NewLoader(datasetPath)
	records, err := loader.LoadSample(sampleSize)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	slog.Info("Dataset loaded", "items", len(records))

	var service *analysis.Service
	if !offline {
		var provider providers.Provider
		switch providerName {
		case "", "ollama":
			provider = ollama.New(cfg.OllamaURL, cfg.ConnectTimeout, cfg.TotalTimeout)
		case "gemini":
			if !cfg.GeminiEnabled {
				return fmt.Errorf("gemini provider not available: GEMINI_API_KEY not set")
			}
			provider = gemini.New(cfg.GeminiAPIKey, cfg.GeminiEnabled)
		default:
			return fmt.Errorf("unsupported provider: %s", providerName)
		}

		store, err := prompts.NewFileStore(cfg.TemplatesPath)
		if err != nil {
			return fmt.Errorf("failed to load prompt templates: %w", err)
		}

		imageLoader := images.NewLoader(cfg.MaxUploadBytes, cfg.AllowedMIMETypes)
		service = analysis.NewService(cfg, provider, store, imageLoader, analysis.NewHistory(cfg.HistorySize))
	}

	if concurrency < 1 {
		concurrency = 1
	}

	slog.Info("Processing items", "concurrency", concurrency)

	itemResults := make([]metrics.ItemResult, len(records))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)

	for i, item := range records {
		wg.Add(1)
		go func(i int, item dataset.PhotoRecord) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			itemResults[i] = evaluateItem(ctx, service, model, item, offline)
		}(i, item)
	}
	wg.Wait()

	summary := metrics.Summarize(itemResults)

	path, err := results.SaveToYAML(results.EvalConfig{
		Provider:    providerName,
		Model:       model,
		DatasetPath: datasetPath,
		SampleSize:  sampleSize,
		Offline:     offline,
	}, summary, itemResults)
	if err != nil {
		return err
	}

	slog.Info("Evaluation complete",
		"items", summary.Items,
		"scored", summary.Scored,
		"failures", summary.Failures,
		"category_accuracy", fmt.Sprintf("%.2f", summary.CategoryAccuracy),
		"mean_object_f1", fmt.Sprintf("%.2f", summary.MeanObjectF1),
		"mean_overall", fmt.Sprintf("%.2f", summary.MeanOverall),
		"results", path)
	return nil
}

// evaluateItem scores one dataset record. Online runs call the model with
// the fallback record disabled so infrastructure failures stay visible;
// offline runs extract straight from the reference transcript.
func evaluateItem(ctx context.Context, service *analysis.Service, model string, item dataset.PhotoRecord, offline bool) metrics.ItemResult {
	result := metrics.ItemResult{ID: item.ID}

	var record *analysis.AnalysisRecord
	if offline {
		if item.Transcript == "" {
			result.Error = "no reference transcript"
			result.ErrorKind = "dataset"
			return result
		}
		record = analysis.Extract(analysis.Clean(item.Transcript))
		record.Tags = analysis.NormalizeTags(record.Tags)
	} else {
		var err error
		record, err = service.Analyze(ctx, analysis.AnalysisRequest{
			ImagePath:     item.ImagePath,
			LocationHint:  item.LocationHint,
			FaceHint:      item.FaceHint,
			Model:         model,
			AllowFallback: false,
		})
		if err != nil {
			result.Error = err.Error()
			var invErr *analysis.InvokeError
			if errors.As(err, &invErr) {
				result.ErrorKind = string(invErr.Kind)
			} else {
				result.ErrorKind = "unknown"
			}
			return result
		}
	}

	result.Comparison = metrics.Compare(record, item)
	return result
}
