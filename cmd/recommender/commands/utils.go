// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Builds the app from env and flags, and formats output
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/recommend/internal/app"
	"github.com/harper/recommend/internal/config"
	"github.com/harper/recommend/internal/logging"
)

// setup loads .env and config, applies global flags, and wires the app.
// Logs go to stderr so stdout stays clean for results.
func setup(cmd *cobra.Command) (*app.App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return app.Build(cfg, logger)
}

func newLogger(level string, w io.Writer) (*log.Logger, error) {
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}
	if w == nil {
		w = os.Stderr
	}
	return logging.New(level, w)
}

// wantJSON reports whether output should be JSON
func wantJSON() bool {
	return outputFormat == "json"
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(w, "%s\n", data)
	return nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// validateThreshold returns error if v is outside the cosine range
func validateThreshold(v float64, name string) error {
	if v < -1 || v > 1 {
		return fmt.Errorf("%s must be between -1 and 1, got %g", name, v)
	}
	return nil
}
