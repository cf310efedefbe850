package coverage

import (
	"sort"
	"strconv"
)

// UncoveredFunction is a declared function that was never entered.
type UncoveredFunction struct {
	Name string
	Line int
}

// UncoveredBranch is a single branch arm that was never taken.
type UncoveredBranch struct {
	Line int
	Type string
}

// UncoveredReport lists the uncovered regions of one file.
type UncoveredReport struct {
	Path      string
	Lines     []int
	Functions []UncoveredFunction
	Branches  []UncoveredBranch
}

// Empty reports whether the file has no uncovered regions at all.
func (r UncoveredReport) Empty() bool {
	return len(r.Lines) == 0 && len(r.Functions) == 0 && len(r.Branches) == 0
}

// ExtractUncovered walks the detail document and derives, per file, the
// uncovered statement lines, functions, and branch arms. Files with full
// coverage are omitted; an empty document yields an empty slice.
//
// Ids whose hit count is zero but that have no mapped location are dropped
// silently: a lookup miss in a half-written report is not worth failing
// the whole run for. Output is sorted by path for deterministic rendering.
func ExtractUncovered(doc DetailDocument) []UncoveredReport {
	reports := make([]UncoveredReport, 0, len(doc))

	for _, path := range sortedKeys(doc) {
		entry := doc[path]
		report := UncoveredReport{
			Path:      path,
			Lines:     uncoveredLines(entry),
			Functions: uncoveredFunctions(entry),
			Branches:  uncoveredBranches(entry),
		}
		if !report.Empty() {
			reports = append(reports, report)
		}
	}

	return reports
}

// uncoveredLines collects the start lines of statements with zero hits,
// deduplicated and sorted ascending.
func uncoveredLines(entry DetailEntry) []int {
	seen := make(map[int]bool)
	for id, count := range entry.S {
		if count != 0 {
			continue
		}
		loc, ok := entry.StatementMap[id]
		if !ok {
			continue
		}
		seen[loc.Start.Line] = true
	}

	lines := make([]int, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// uncoveredFunctions collects never-entered functions in id order, which
// matches the report producer's declaration order for numeric ids.
func uncoveredFunctions(entry DetailEntry) []UncoveredFunction {
	var fns []UncoveredFunction
	for _, id := range sortedIDs(entry.F) {
		if entry.F[id] != 0 {
			continue
		}
		meta, ok := entry.FnMap[id]
		if !ok {
			continue
		}
		fns = append(fns, UncoveredFunction{Name: meta.Name, Line: meta.Decl.Start.Line})
	}
	return fns
}

// uncoveredBranches collects, for every branch site, the arms whose hit
// count is zero, resolving each arm to its own location by index.
func uncoveredBranches(entry DetailEntry) []UncoveredBranch {
	var branches []UncoveredBranch
	for _, id := range sortedIDs(entry.B) {
		meta, ok := entry.BranchMap[id]
		if !ok {
			continue
		}
		for arm, count := range entry.B[id] {
			if count != 0 || arm >= len(meta.Locations) {
				continue
			}
			branches = append(branches, UncoveredBranch{
				Line: meta.Locations[arm].Start.Line,
				Type: meta.Type,
			})
		}
	}
	return branches
}

func sortedKeys(doc DetailDocument) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedIDs orders opaque hit-map ids numerically when possible, falling
// back to lexicographic order for non-numeric ids.
func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return ids[i] < ids[j]
	})
	return ids
}
