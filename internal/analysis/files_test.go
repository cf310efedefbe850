package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinpostal/katamari-devtools/internal/coverage"
)

func entry(lines, statements, functions, branches float64) coverage.SummaryEntry {
	return coverage.SummaryEntry{
		Lines:      coverage.MetricDatum{Total: 100, Pct: lines},
		Statements: coverage.MetricDatum{Total: 100, Pct: statements},
		Functions:  coverage.MetricDatum{Total: 100, Pct: functions},
		Branches:   coverage.MetricDatum{Total: 100, Pct: branches},
	}
}

func TestAnalyzeFiles_PassingFilesOmitted(t *testing.T) {
	summary := coverage.SummaryDocument{
		coverage.TotalKey: entry(90, 90, 90, 90),
		"src/clean.js":    entry(95, 96, 100, 90),
	}

	assert.Empty(t, AnalyzeFiles(summary, DefaultThresholds()))
}

func TestAnalyzeFiles_FailingFileRecorded(t *testing.T) {
	summary := coverage.SummaryDocument{
		coverage.TotalKey: entry(90, 90, 90, 90),
		"src/game.js":     entry(95, 70, 100, 60),
	}

	verdicts := AnalyzeFiles(summary, DefaultThresholds())
	require.Len(t, verdicts, 1)

	v := verdicts[0]
	assert.Equal(t, "game.js", v.DisplayName)
	assert.Equal(t, "src/game.js", v.Path)
	assert.Equal(t, 60.0, v.Overall)
	require.Len(t, v.Failing, 2)
	assert.Equal(t, coverage.MetricStatements, v.Failing[0].Name)
	assert.Equal(t, coverage.MetricBranches, v.Failing[1].Name)
}

func TestAnalyzeFiles_WorstFirstOrdering(t *testing.T) {
	summary := coverage.SummaryDocument{
		coverage.TotalKey: entry(90, 90, 90, 90),
		"src/mid.js":      entry(50, 90, 90, 90),
		"src/worst.js":    entry(10, 90, 90, 90),
		"src/least.js":    entry(75, 90, 90, 90),
	}

	verdicts := AnalyzeFiles(summary, DefaultThresholds())
	require.Len(t, verdicts, 3)
	assert.Equal(t, "src/worst.js", verdicts[0].Path)
	assert.Equal(t, "src/mid.js", verdicts[1].Path)
	assert.Equal(t, "src/least.js", verdicts[2].Path)

	for i := 1; i < len(verdicts); i++ {
		assert.LessOrEqual(t, verdicts[i-1].Overall, verdicts[i].Overall)
	}
}

func TestAnalyzeFiles_PathTieBreak(t *testing.T) {
	summary := coverage.SummaryDocument{
		coverage.TotalKey: entry(90, 90, 90, 90),
		"src/b.js":        entry(40, 90, 90, 90),
		"src/a.js":        entry(40, 90, 90, 90),
	}

	verdicts := AnalyzeFiles(summary, DefaultThresholds())
	require.Len(t, verdicts, 2)
	assert.Equal(t, "src/a.js", verdicts[0].Path)
	assert.Equal(t, "src/b.js", verdicts[1].Path)
}

func TestAnalyzeFiles_OverallIsMinimumEvenWhenMinimumPasses(t *testing.T) {
	// With uneven thresholds the minimum percentage can belong to a
	// passing metric; it still drives the ordering figure.
	thresholds := ThresholdSet{
		coverage.MetricLines:      80,
		coverage.MetricStatements: 95,
		coverage.MetricFunctions:  80,
		coverage.MetricBranches:   80,
	}
	summary := coverage.SummaryDocument{
		coverage.TotalKey: entry(90, 96, 90, 90),
		"src/odd.js":      entry(85, 90, 95, 99),
	}

	verdicts := AnalyzeFiles(summary, thresholds)
	require.Len(t, verdicts, 1)
	assert.Equal(t, 85.0, verdicts[0].Overall)
	require.Len(t, verdicts[0].Failing, 1)
	assert.Equal(t, coverage.MetricStatements, verdicts[0].Failing[0].Name)
}
