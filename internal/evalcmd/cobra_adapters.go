package evalcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRunCmd creates the eval run command.
func NewRunCmd() *cobra.Command {
	var datasetPath string
	var provider string
	var model string
	var sampleSize int
	var concurrency int
	var offline bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an extraction evaluation over an annotated dataset",
		Long: `Runs the analysis pipeline over an annotated photo dataset and scores the
extracted category, objects and face counts against the reference
annotations.

The fallback record is disabled during evaluation: transport failures are
counted and reported by kind instead of being hidden behind placeholder
records. With --offline the model is skipped entirely and extraction runs
over the dataset's reference transcripts, which is useful for tuning the
heuristics without a GPU.`,
		Example: `  # Evaluate 10 photos against a local Ollama
  photodiary eval run --dataset photos.jsonl --sample 10

  # Full offline run over reference transcripts
  photodiary eval run --dataset photos.parquet --sample -1 --offline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
				return fmt.Errorf("dataset file not found: %s", datasetPath)
			}
			return executeRun(cmd.Context(), datasetPath, provider, model, sampleSize, concurrency, offline)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "dataset.jsonl", "Path to the annotated dataset (.jsonl or .parquet)")
	cmd.Flags().StringVar(&provider, "provider", "ollama", "Inference provider (ollama or gemini)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (defaults to the configured fast variant)")
	cmd.Flags().IntVar(&sampleSize, "sample", 10, "Number of records to evaluate (-1 for all)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 2, "Concurrent analyses")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the model and extract from reference transcripts")

	return cmd
}

// NewReportCmd creates the eval report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <results.yaml>",
		Short: "Print a summary report for a saved evaluation run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(args[0])
		},
	}
	return cmd
}
