package analysis

import (
	"path/filepath"
	"sort"

	"github.com/kevinpostal/katamari-devtools/internal/coverage"
)

// FileVerdict records one file that missed at least one threshold.
type FileVerdict struct {
	DisplayName string
	Path        string
	Failing     []FailedMetric
	// Overall is the minimum of the file's four percentages; worse files
	// sort first.
	Overall float64
}

// AnalyzeFiles evaluates every file entry of the summary and returns the
// offenders sorted worst-first (ascending Overall, then ascending path).
// Files that meet every threshold are omitted.
func AnalyzeFiles(summary coverage.SummaryDocument, thresholds ThresholdSet) []FileVerdict {
	var verdicts []FileVerdict

	for _, path := range summary.FilePaths() {
		entry := summary[path]

		var failing []FailedMetric
		overall := 100.0
		for _, name := range coverage.MetricNames {
			datum := entry.Metric(name)
			if datum.Pct < overall {
				overall = datum.Pct
			}
			if status := thresholds.Evaluate(name, datum.Pct); !status.Passed {
				failing = append(failing, FailedMetric{Name: name, Pct: datum.Pct, Delta: status.Delta})
			}
		}

		if len(failing) == 0 {
			continue
		}
		verdicts = append(verdicts, FileVerdict{
			DisplayName: filepath.Base(path),
			Path:        path,
			Failing:     failing,
			Overall:     overall,
		})
	}

	sort.Slice(verdicts, func(i, j int) bool {
		if verdicts[i].Overall != verdicts[j].Overall {
			return verdicts[i].Overall < verdicts[j].Overall
		}
		return verdicts[i].Path < verdicts[j].Path
	})

	return verdicts
}
