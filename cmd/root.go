package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"photodiary/internal/analysis"
	"photodiary/internal/config"
	"photodiary/internal/gemini"
	"photodiary/internal/images"
	"photodiary/internal/ollama"
	"photodiary/internal/prompts"
	"photodiary/internal/providers"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photodiary",
		Short: "Photo description pipeline backed by local vision models",
		Long: `Photodiary converts photos into structured, searchable description records
using a vision-capable LLM (a local Ollama install by default).

Each photo is described in free-form prose by the model, then mined for
scene category, objects, faces, visible text and tags.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}

// buildService wires the pipeline from configuration. The provider name
// selects the backend; gemini is only usable when its capability flag was
// enabled at startup.
func buildService(cfg *config.Config, providerName string) (*analysis.Service, *images.Loader, *analysis.History, error) {
	var provider providers.Provider
	switch providerName {
	case "", "ollama":
		provider = ollama.New(cfg.OllamaURL, cfg.ConnectTimeout, cfg.TotalTimeout)
	case "gemini":
		if !cfg.GeminiEnabled {
			return nil, nil, nil, fmt.Errorf("gemini provider not available: GEMINI_API_KEY not set")
		}
		provider = gemini.New(cfg.GeminiAPIKey, cfg.GeminiEnabled)
	default:
		return nil, nil, nil, fmt.Errorf("unsupported provider: %s", providerName)
	}

	store, err := prompts.NewFileStore(cfg.TemplatesPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	loader := images.NewLoader(cfg.MaxUploadBytes, cfg.AllowedMIMETypes)
	history := analysis.NewHistory(cfg.HistorySize)
	service := analysis.NewService(cfg, provider, store, loader, history)
	return service, loader, history, nil
}
