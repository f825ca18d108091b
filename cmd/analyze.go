package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"photodiary/internal/analysis"
	"photodiary/internal/config"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		providerName string
		model        string
		locationHint string
		faceHint     string
		detailed     bool
		noFallback   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze a single photo and print the record as JSON",
		Long: `Analyzes one photo (local path or URL) and prints the resulting
description record as JSON.

By default a transport failure still yields a minimal fallback record;
pass --no-fallback to surface the raw error instead.`,
		Example: `  # Analyze a local photo
  photodiary analyze holiday.jpg

  # Deep analysis with a location hint
  photodiary analyze holiday.jpg --detailed --location "Cinque Terre"

  # Surface transport failures instead of falling back
  photodiary analyze holiday.jpg --no-fallback`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			service, _, _, err := buildService(cfg, providerName)
			if err != nil {
				return err
			}

			record, err := service.Analyze(cmd.Context(), analysis.AnalysisRequest{
				ImagePath:     args[0],
				LocationHint:  locationHint,
				FaceHint:      faceHint,
				Model:         model,
				Detailed:      detailed,
				AllowFallback: !noFallback,
			})
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(record)
		},
	}

	cmd.Flags().StringVar(&providerName, "provider", "ollama", "Inference provider (ollama or gemini)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to the configured fast/deep variant)")
	cmd.Flags().StringVar(&locationHint, "location", "", "Location hint folded into the prompt")
	cmd.Flags().StringVar(&faceHint, "faces", "", "Face-context hint folded into the prompt")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Use the deep model variant")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Fail on transport errors instead of returning a fallback record")

	return cmd
}
