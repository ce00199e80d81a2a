// ABOUTME: CLI command to show model and pipeline details
// ABOUTME: Mirrors the /api/model-info and /api/technical-info endpoints
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewInfoCmd creates info command
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show model and pipeline information",
		Long:  `Show which model answers queries and how the retrieval pipeline is configured.`,
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}

	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	model := a.Core.GetModelInfo()
	tech := a.Core.GetTechnicalInfo()

	if wantJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"model":     model,
			"technical": tech,
		})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Model:\t%s (%d%%, %s)\n", model.Model, model.Status.Percentage, model.Status.Health)
	fmt.Fprintf(w, "Embedding model:\t%s\n", tech.EmbeddingModel)
	fmt.Fprintf(w, "Vector database:\t%s\n", tech.VectorDatabase)
	fmt.Fprintf(w, "LLM:\t%s\n", tech.LLM)
	fmt.Fprintf(w, "Vector dimensions:\t%d\n", tech.VectorDimensions)
	fmt.Fprintf(w, "Similarity metric:\t%s\n", tech.SimilarityMetric)
	fmt.Fprintf(w, "Catalog:\t%s\n", tech.CatalogSize)
	return w.Flush()
}
