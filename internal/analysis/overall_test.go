package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinpostal/katamari-devtools/internal/coverage"
)

func summaryWithTotal(lines, statements, functions, branches float64) coverage.SummaryDocument {
	return coverage.SummaryDocument{
		coverage.TotalKey: coverage.SummaryEntry{
			Lines:      coverage.MetricDatum{Total: 100, Covered: int(lines), Pct: lines},
			Statements: coverage.MetricDatum{Total: 100, Covered: int(statements), Pct: statements},
			Functions:  coverage.MetricDatum{Total: 100, Covered: int(functions), Pct: functions},
			Branches:   coverage.MetricDatum{Total: 100, Covered: int(branches), Pct: branches},
		},
	}
}

func TestAnalyzeOverall_Pass(t *testing.T) {
	summary := summaryWithTotal(90, 85, 80, 81)

	verdict := AnalyzeOverall(summary, DefaultThresholds())

	assert.True(t, verdict.Passed)
	assert.Empty(t, verdict.FailedMetrics())
	assert.InDelta(t, 84.0, verdict.Average, 1e-9)
	require.Len(t, verdict.Metrics, 4)
	assert.Equal(t, coverage.MetricLines, verdict.Metrics[0].Name)
	assert.Equal(t, 80, verdict.Metrics[0].Threshold)
}

func TestAnalyzeOverall_FailSingleMetric(t *testing.T) {
	summary := summaryWithTotal(90, 85, 80, 79)

	verdict := AnalyzeOverall(summary, DefaultThresholds())

	assert.False(t, verdict.Passed)
	failed := verdict.FailedMetrics()
	require.Len(t, failed, 1)
	assert.Equal(t, coverage.MetricBranches, failed[0].Name)
	assert.InDelta(t, 1.0, failed[0].Delta, 1e-9)
}

func TestAnalyzeOverall_AverageIsInformationalOnly(t *testing.T) {
	// Average above threshold does not rescue a failing metric.
	summary := summaryWithTotal(100, 100, 100, 10)

	verdict := AnalyzeOverall(summary, DefaultThresholds())

	assert.False(t, verdict.Passed)
	assert.InDelta(t, 77.5, verdict.Average, 1e-9)
}

func TestAnalyzeOverall_MetricOrderIsFixed(t *testing.T) {
	verdict := AnalyzeOverall(summaryWithTotal(1, 2, 3, 4), DefaultThresholds())

	names := make([]coverage.MetricName, 0, 4)
	for _, m := range verdict.Metrics {
		names = append(names, m.Name)
	}
	assert.Equal(t, coverage.MetricNames, names)
}
