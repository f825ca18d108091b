package cmd

import (
	"github.com/spf13/cobra"

	"photodiary/internal/evalcmd"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Extraction quality evaluation tools",
		Long: `Evaluation tools for measuring photo-description extraction accuracy
against reference annotations.

Datasets are JSONL or Parquet files pairing photos with reference scene
categories, object lists and face counts. Evaluation runs disable the
fallback record so infrastructure failures are reported separately from
content failures.`,
	}

	cmd.AddCommand(evalcmd.NewRunCmd())
	cmd.AddCommand(evalcmd.NewReportCmd())

	return cmd
}
