// ABOUTME: CLI command to get recommendations for a natural-language query
// ABOUTME: Prints the response, a ranked product table, and rationale points
package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/recommend/internal/core"
	"github.com/harper/recommend/internal/models"
)

var (
	queryLimit     int
	queryThreshold float64
)

// NewQueryCmd creates query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Recommend products for a query",
		Long: `Recommend products for a natural-language query.

The query is embedded and matched against every catalog product by
cosine similarity. Products at or above the threshold are returned in
descending score order.

Examples:
  recommender query "video editing laptop under 1000"
  recommender query --limit 3 --threshold 0.8 "laptop for students"
  recommender query --format json "battery life"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().IntVar(&queryLimit, "limit", 5, "Maximum results to return")
	cmd.Flags().Float64Var(&queryThreshold, "threshold", 0.5, "Minimum similarity score (-1 to 1)")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	var opts core.QueryOptions
	if cmd.Flags().Changed("limit") {
		if err := validatePositiveInt(queryLimit, "limit"); err != nil {
			return err
		}
		opts.MaxResults = &queryLimit
	}
	if cmd.Flags().Changed("threshold") {
		if err := validateThreshold(queryThreshold, "threshold"); err != nil {
			return err
		}
		opts.ScoreThreshold = &queryThreshold
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	result := a.Core.ProcessQuery(cmd.Context(), query, opts)

	if wantJSON() {
		return printJSON(cmd.OutOrStdout(), result)
	}
	printQueryResult(cmd.OutOrStdout(), result)
	return nil
}

func printQueryResult(out io.Writer, result models.QueryResult) {
	fmt.Fprintf(out, "%s\n", result.Response)

	if len(result.Products) > 0 {
		fmt.Fprintln(out)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tID\tNAME\tPRICE\tRATING\n")
		fmt.Fprintf(w, "-----\t--\t----\t-----\t------\n")
		for _, p := range result.Products {
			fmt.Fprintf(w, "%.3f\t%d\t%s\t$%.2f\t%.1f\n",
				p.MatchScore, p.ID, truncate(p.Name, 30), p.Price, p.Rating)
		}
		w.Flush()
	}

	if len(result.Rationale) > 0 {
		fmt.Fprintln(out)
		for _, r := range result.Rationale {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
}
