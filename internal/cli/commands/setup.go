// Package commands implements the ppdpy CLI subcommands.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericvoid/ppdpy/internal/cli/config"
	"github.com/ericvoid/ppdpy/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Out    *output.Renderer
}

// NewCommandContext creates a CommandContext from a command's
// configuration and context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Out:    r,
	}
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables. The fallback keeps commands usable when
// constructed directly, as in tests.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	prefix := getEnvOrDefault("PPDPY_PREFIX", config.DefaultPrefix)
	outputFormat := getEnvOrDefault("PPDPY_OUTPUT", config.DefaultOutput)

	var symbols []string
	if s := os.Getenv("PPDPY_SYMBOLS"); s != "" {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				symbols = append(symbols, name)
			}
		}
	}

	return &config.Config{
		Prefix:       prefix,
		Symbols:      symbols,
		OutputFormat: outputFormat,
		Verbose:      os.Getenv("PPDPY_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
