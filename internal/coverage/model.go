// Package coverage provides the data model and loaders for istanbul-style
// coverage reports (coverage-summary.json and coverage-final.json), plus
// extraction of uncovered regions from the detail report.
package coverage

import "sort"

// MetricName identifies one of the four coverage metrics.
type MetricName string

const (
	MetricLines      MetricName = "lines"
	MetricStatements MetricName = "statements"
	MetricFunctions  MetricName = "functions"
	MetricBranches   MetricName = "branches"
)

// MetricNames is the fixed, ordered set of metrics every analysis iterates in.
var MetricNames = []MetricName{MetricLines, MetricStatements, MetricFunctions, MetricBranches}

// MetricDatum holds the counts and percentage for a single metric.
// Pct is authoritative: it is whatever the report producer computed and is
// never recomputed here.
type MetricDatum struct {
	Total   int     `json:"total"`
	Covered int     `json:"covered"`
	Skipped int     `json:"skipped"`
	Pct     float64 `json:"pct"`
}

// SummaryEntry is the per-path block of the summary document.
type SummaryEntry struct {
	Lines      MetricDatum `json:"lines"`
	Statements MetricDatum `json:"statements"`
	Functions  MetricDatum `json:"functions"`
	Branches   MetricDatum `json:"branches"`
}

// Metric returns the datum for the named metric.
func (e SummaryEntry) Metric(name MetricName) MetricDatum {
	switch name {
	case MetricLines:
		return e.Lines
	case MetricStatements:
		return e.Statements
	case MetricFunctions:
		return e.Functions
	default:
		return e.Branches
	}
}

// TotalKey is the synthetic summary key carrying whole-repo numbers.
const TotalKey = "total"

// SummaryDocument maps source paths (plus the synthetic "total" key) to
// their summary entries.
type SummaryDocument map[string]SummaryEntry

// Total returns the whole-repo entry. The loader guarantees its presence.
func (d SummaryDocument) Total() SummaryEntry {
	return d[TotalKey]
}

// FilePaths returns every key except "total", sorted ascending.
func (d SummaryDocument) FilePaths() []string {
	paths := make([]string, 0, len(d))
	for p := range d {
		if p != TotalKey {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// Position is a line/column pair in a source file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Location is a source span. Only Start.Line matters to the analyses.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// FunctionMeta describes a declared function in the detail report.
type FunctionMeta struct {
	Name string   `json:"name"`
	Decl Location `json:"decl"`
	Loc  Location `json:"loc"`
}

// BranchMeta describes a branch site with one location per outgoing arm.
type BranchMeta struct {
	Type      string     `json:"type"`
	Loc       Location   `json:"loc"`
	Locations []Location `json:"locations"`
}

// DetailEntry is the per-file block of the detail document: hit maps keyed
// by opaque ids, and the location maps that resolve those ids.
type DetailEntry struct {
	S            map[string]int          `json:"s"`
	F            map[string]int          `json:"f"`
	B            map[string][]int        `json:"b"`
	StatementMap map[string]Location     `json:"statementMap"`
	FnMap        map[string]FunctionMeta `json:"fnMap"`
	BranchMap    map[string]BranchMeta   `json:"branchMap"`
}

// DetailDocument maps source paths to their detail entries.
type DetailDocument map[string]DetailEntry
