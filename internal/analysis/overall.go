package analysis

import (
	"github.com/kevinpostal/katamari-devtools/internal/coverage"
)

// MetricVerdict is one row of the whole-repo verdict.
type MetricVerdict struct {
	Name      coverage.MetricName
	Pct       float64
	Covered   int
	Total     int
	Threshold int
	Status    MetricStatus
}

// OverallVerdict is the whole-repo pass/fail decision.
type OverallVerdict struct {
	Metrics []MetricVerdict
	// Average is the arithmetic mean of the four percentages. It is shown
	// for context only and never feeds the pass/fail decision.
	Average float64
	Passed  bool
}

// FailedMetrics returns the metrics that fell below their threshold, in
// the fixed metric order.
func (v OverallVerdict) FailedMetrics() []FailedMetric {
	var failed []FailedMetric
	for _, m := range v.Metrics {
		if !m.Status.Passed {
			failed = append(failed, FailedMetric{Name: m.Name, Pct: m.Pct, Delta: m.Status.Delta})
		}
	}
	return failed
}

// AnalyzeOverall evaluates the synthetic "total" entry of the summary
// against the thresholds. The verdict passes iff every metric passes.
func AnalyzeOverall(summary coverage.SummaryDocument, thresholds ThresholdSet) OverallVerdict {
	total := summary.Total()

	verdict := OverallVerdict{
		Metrics: make([]MetricVerdict, 0, len(coverage.MetricNames)),
		Passed:  true,
	}

	var pctSum float64
	for _, name := range coverage.MetricNames {
		datum := total.Metric(name)
		status := thresholds.Evaluate(name, datum.Pct)
		if !status.Passed {
			verdict.Passed = false
		}
		pctSum += datum.Pct
		verdict.Metrics = append(verdict.Metrics, MetricVerdict{
			Name:      name,
			Pct:       datum.Pct,
			Covered:   datum.Covered,
			Total:     datum.Total,
			Threshold: thresholds.Get(name),
			Status:    status,
		})
	}
	verdict.Average = pctSum / float64(len(coverage.MetricNames))

	return verdict
}
