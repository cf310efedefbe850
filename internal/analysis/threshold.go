// Package analysis evaluates coverage documents against configured
// thresholds and produces structured verdicts, leaving all presentation to
// the report package.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kevinpostal/katamari-devtools/internal/coverage"
)

// DefaultThreshold is the minimum percentage applied to every metric when
// no override is configured.
const DefaultThreshold = 80

// ThresholdSet holds the minimum acceptable percentage per metric.
type ThresholdSet map[coverage.MetricName]int

// DefaultThresholds returns a ThresholdSet with every metric at
// DefaultThreshold.
func DefaultThresholds() ThresholdSet {
	set := make(ThresholdSet, len(coverage.MetricNames))
	for _, name := range coverage.MetricNames {
		set[name] = DefaultThreshold
	}
	return set
}

// Get returns the threshold for a metric, falling back to the default for
// metrics the set does not mention.
func (t ThresholdSet) Get(name coverage.MetricName) int {
	if v, ok := t[name]; ok {
		return v
	}
	return DefaultThreshold
}

// MetricStatus is the outcome of evaluating one metric percentage.
type MetricStatus struct {
	Passed bool
	// Delta is threshold - pct when the metric failed, zero otherwise.
	Delta float64
}

// Evaluate compares a percentage against the metric's threshold.
func (t ThresholdSet) Evaluate(name coverage.MetricName, pct float64) MetricStatus {
	threshold := float64(t.Get(name))
	if pct >= threshold {
		return MetricStatus{Passed: true}
	}
	return MetricStatus{Passed: false, Delta: threshold - pct}
}

// FailedMetric names one metric that fell below its threshold and by how
// much.
type FailedMetric struct {
	Name  coverage.MetricName
	Pct   float64
	Delta float64
}

// BelowThresholdError is the structured verdict for a failed run. It is
// returned instead of printed so the caller can choose the exit code.
type BelowThresholdError struct {
	Failed []FailedMetric
}

func (e *BelowThresholdError) Error() string {
	names := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		names = append(names, fmt.Sprintf("%s (%.1f%%, %.1f below)", f.Name, f.Pct, f.Delta))
	}
	sort.Strings(names)
	return "coverage below threshold: " + strings.Join(names, ", ")
}
