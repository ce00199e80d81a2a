// ABOUTME: Root CLI command with global flags shared by every subcommand
// ABOUTME: Registers serve, query, followup, products, info, mcp, and version
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	catalogPath  string
)

const banner = `
██████╗ ███████╗ ██████╗
██╔══██╗██╔════╝██╔════╝
██████╔╝█████╗  ██║
██╔══██╗██╔══╝  ██║
██║  ██║███████╗╚██████╗
╚═╝  ╚═╝╚══════╝ ╚═════╝`

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommender",
		Short: "Product recommendations from natural-language queries",
		Long: banner + `

Recommender answers shopping questions against a product catalog.
Queries are embedded, matched by cosine similarity, and explained with a
short response and rationale. Set OPENAI_API_KEY to refine the text with
an OpenAI chat model; without it the answers come from templates.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch outputFormat {
			case "auto", "json", "table":
				return nil
			default:
				return fmt.Errorf("--format must be auto, json, or table, got %q", outputFormat)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, json, or table")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (YAML or JSON); overrides CATALOG_PATH")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewServeCmd(),
		NewQueryCmd(),
		NewFollowupCmd(),
		NewProductsCmd(),
		NewInfoCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
