package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevinpostal/katamari-devtools/internal/analysis"
	"github.com/kevinpostal/katamari-devtools/internal/cache"
	"github.com/kevinpostal/katamari-devtools/internal/config"
	"github.com/kevinpostal/katamari-devtools/internal/coverage"
	"github.com/kevinpostal/katamari-devtools/internal/logger"
	"github.com/kevinpostal/katamari-devtools/internal/report"
)

// NewAnalyzeCommand creates the "analyze" subcommand.
func NewAnalyzeCommand() *cobra.Command {
	var (
		summaryPath string
		detailPath  string
		threshold   int
		enforce     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze coverage reports against thresholds.",
		Long: `Analyze the coverage summary and detail reports.

This command:
  1. Loads coverage/coverage-summary.json and coverage/coverage-final.json
  2. Evaluates whole-repo coverage against the per-metric thresholds
  3. Ranks files that miss their thresholds, worst first
  4. Lists uncovered lines, functions, and branch arms per file

Analyses degrade gracefully: if only one report artifact exists, the
analyses that need the other skip themselves with a note. If neither
exists the command fails.

Exit codes:
  0  analysis completed, all thresholds met (or --enforce not set)
  1  report missing, unreadable, or malformed
  2  one or more thresholds failed and --enforce is set

Configuration:
  Default values are loaded from covcheck.yaml. Command line flags
  override the config file values.

Examples:
  # Analyze with defaults
  covcheck analyze

  # Enforce thresholds (CI gate)
  covcheck analyze --enforce

  # Uniform 90% threshold on custom report locations
  covcheck analyze --threshold 90 --summary out/summary.json --detail out/final.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if !cmd.Flags().Changed("summary") {
				summaryPath = cfg.Report.SummaryPath
			}
			if !cmd.Flags().Changed("detail") {
				detailPath = cfg.Report.DetailPath
			}
			if !cmd.Flags().Changed("enforce") {
				enforce = cfg.Enforce
			}

			thresholds := analysis.ThresholdSet{
				coverage.MetricLines:      cfg.Thresholds.Lines,
				coverage.MetricStatements: cfg.Thresholds.Statements,
				coverage.MetricFunctions:  cfg.Thresholds.Functions,
				coverage.MetricBranches:   cfg.Thresholds.Branches,
			}
			if cmd.Flags().Changed("threshold") {
				for _, name := range coverage.MetricNames {
					thresholds[name] = threshold
				}
			}

			return runAnalyze(cfg, summaryPath, detailPath, thresholds, enforce)
		},
	}

	cmd.Flags().StringVar(&summaryPath, "summary", "coverage/coverage-summary.json", "Path to the coverage summary report")
	cmd.Flags().StringVar(&detailPath, "detail", "coverage/coverage-final.json", "Path to the coverage detail report")
	cmd.Flags().IntVar(&threshold, "threshold", analysis.DefaultThreshold, "Uniform threshold applied to all four metrics")
	cmd.Flags().BoolVar(&enforce, "enforce", false, "Exit with code 2 when a threshold fails")

	return cmd
}

func runAnalyze(cfg *config.Config, summaryPath, detailPath string, thresholds analysis.ThresholdSet, enforce bool) error {
	summary, detail, err := coverage.LoadReports(summaryPath, detailPath)
	if err != nil {
		return err
	}

	res := report.Result{
		HasSummary: summary != nil,
		HasDetail:  detail != nil,
	}

	if summary != nil {
		res.Overall = analysis.AnalyzeOverall(summary, thresholds)
		res.Files = analysis.AnalyzeFiles(summary, thresholds)
	}
	if detail != nil {
		res.Uncovered = coverage.ExtractUncovered(detail)
	}

	if stats, err := cache.NewStore(cfg.Cache.Dir).Stats(); err == nil {
		res.CacheStats = &stats
	} else {
		logger.Debug("cache stats unavailable: %v", err)
	}

	renderer := report.NewRenderer(os.Stdout, cfg.BarWidth)
	renderer.Render(res)

	if enforce && res.HasSummary && !res.Overall.Passed {
		return &analysis.BelowThresholdError{Failed: res.Overall.FailedMetrics()}
	}
	return nil
}
