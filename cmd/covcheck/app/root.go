package app

import (
	"github.com/spf13/cobra"

	"github.com/kevinpostal/katamari-devtools/internal/logger"
)

// NewCovcheckCommand creates the root command for the covcheck tool.
func NewCovcheckCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "covcheck",
		Short: "Coverage analyzer and CI cache-key manager.",
		Long: `covcheck analyzes vitest coverage reports against configured
thresholds and manages the CI cache key derived from the dependency
lockfile and the test-runner configuration.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel)
			logger.SetLevel(logLevel)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(NewAnalyzeCommand())
	cmd.AddCommand(NewCacheCommand())

	return cmd
}
