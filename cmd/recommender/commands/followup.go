// ABOUTME: CLI command to ask a follow-up about an earlier query
// ABOUTME: Context products come from re-running the original query
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewFollowupCmd creates followup command
func NewFollowupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "followup <original-query> <followup-query>",
		Short: "Ask a follow-up about earlier recommendations",
		Long: `Ask a follow-up question about the products recommended for an earlier query.

Examples:
  recommender followup "video editing laptop under 1000" "which has the best battery?"`,
		Args: cobra.ExactArgs(2),
		RunE: runFollowup,
	}

	return cmd
}

func runFollowup(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(args[0]) == "" || strings.TrimSpace(args[1]) == "" {
		return fmt.Errorf("original and follow-up queries must not be empty")
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	result := a.Core.ProcessFollowupQuery(cmd.Context(), args[0], args[1])

	if wantJSON() {
		return printJSON(cmd.OutOrStdout(), result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Response)
	return nil
}
