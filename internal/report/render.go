// Package report renders analysis verdicts as labelled text sections.
// Rendering is presentation only: it never influences exit codes.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/kevinpostal/katamari-devtools/internal/analysis"
	"github.com/kevinpostal/katamari-devtools/internal/cache"
	"github.com/kevinpostal/katamari-devtools/internal/coverage"
)

// Icon vocabulary used across all sections.
const (
	iconPass = "✅"
	iconFail = "❌"
	iconWarn = "⚠️"
	iconInfo = "ℹ️"
)

// DefaultBarWidth is the progress bar width in cells.
const DefaultBarWidth = 20

// Result bundles everything the renderer consumes for one run.
type Result struct {
	HasSummary bool
	HasDetail  bool
	Overall    analysis.OverallVerdict
	Files      []analysis.FileVerdict
	Uncovered  []coverage.UncoveredReport
	CacheStats *cache.Stats
}

// Renderer writes the four report sections to a single output stream.
type Renderer struct {
	out      io.Writer
	barWidth int
}

// NewRenderer creates a Renderer. A non-positive barWidth falls back to
// DefaultBarWidth.
func NewRenderer(out io.Writer, barWidth int) *Renderer {
	if barWidth <= 0 {
		barWidth = DefaultBarWidth
	}
	return &Renderer{out: out, barWidth: barWidth}
}

// Render emits all sections in their fixed order.
func (r *Renderer) Render(res Result) {
	r.RenderOverall(res)
	r.RenderFiles(res)
	r.RenderUncovered(res)
	r.RenderRecommendations(res)
}

func (r *Renderer) section(title string) {
	fmt.Fprintf(r.out, "\n=== %s ===\n", title)
}

// RenderOverall prints the whole-repo verdict with one bar per metric.
func (r *Renderer) RenderOverall(res Result) {
	r.section("Overall")

	if !res.HasSummary {
		fmt.Fprintf(r.out, "%s summary report missing, overall analysis skipped\n", iconInfo)
		return
	}

	for _, m := range res.Overall.Metrics {
		icon := iconPass
		if !m.Status.Passed {
			icon = iconFail
		}
		fmt.Fprintf(r.out, "%s %-10s %s %6.2f%% (%d/%d, threshold %d%%)\n",
			icon, m.Name, r.bar(m.Pct), m.Pct, m.Covered, m.Total, m.Threshold)
	}
	fmt.Fprintf(r.out, "%s average    %6.2f%%\n", iconInfo, res.Overall.Average)

	if res.Overall.Passed {
		fmt.Fprintf(r.out, "%s all metrics meet their thresholds\n", iconPass)
	} else {
		fmt.Fprintf(r.out, "%s one or more metrics below threshold\n", iconFail)
	}
}

// RenderFiles prints the per-file offenders, worst first.
func (r *Renderer) RenderFiles(res Result) {
	r.section("Per-File")

	if !res.HasSummary {
		fmt.Fprintf(r.out, "%s summary report missing, per-file analysis skipped\n", iconInfo)
		return
	}
	if len(res.Files) == 0 {
		fmt.Fprintf(r.out, "%s every file meets its thresholds\n", iconPass)
		return
	}

	for _, f := range res.Files {
		names := make([]string, 0, len(f.Failing))
		for _, fm := range f.Failing {
			names = append(names, fmt.Sprintf("%s %.1f%%", fm.Name, fm.Pct))
		}
		fmt.Fprintf(r.out, "%s %s %s %6.2f%% (%s)\n",
			iconWarn, r.bar(f.Overall), f.DisplayName, f.Overall, strings.Join(names, ", "))
	}
}

// RenderUncovered prints per-file uncovered lines (range-compressed),
// functions, and branch arms.
func (r *Renderer) RenderUncovered(res Result) {
	r.section("Uncovered Regions")

	if !res.HasDetail {
		fmt.Fprintf(r.out, "%s detail report missing, uncovered-region analysis skipped\n", iconInfo)
		return
	}
	if len(res.Uncovered) == 0 {
		fmt.Fprintf(r.out, "%s no uncovered regions\n", iconPass)
		return
	}

	for _, u := range res.Uncovered {
		fmt.Fprintf(r.out, "%s %s\n", iconWarn, u.Path)
		if len(u.Lines) > 0 {
			fmt.Fprintf(r.out, "   lines: %s\n", coverage.CompressRanges(u.Lines))
		}
		for _, fn := range u.Functions {
			fmt.Fprintf(r.out, "   function %s (line %d)\n", fn.Name, fn.Line)
		}
		for _, b := range u.Branches {
			fmt.Fprintf(r.out, "   branch %s (line %d)\n", b.Type, b.Line)
		}
	}
}

// RenderRecommendations prints follow-up hints derived from the verdicts,
// plus a cache summary when one was collected.
func (r *Renderer) RenderRecommendations(res Result) {
	r.section("Recommendations")

	any := false
	if res.HasSummary {
		for _, fm := range res.Overall.FailedMetrics() {
			fmt.Fprintf(r.out, "%s raise %s coverage by %.1f%% to reach the %.0f%% threshold\n",
				iconWarn, fm.Name, fm.Delta, fm.Pct+fm.Delta)
			any = true
		}
		for i, f := range res.Files {
			if i >= 3 {
				break
			}
			fmt.Fprintf(r.out, "%s start with %s (worst metric at %.1f%%)\n", iconInfo, f.Path, f.Overall)
			any = true
		}
	}
	if !any {
		fmt.Fprintf(r.out, "%s coverage looks healthy, no action needed\n", iconPass)
	}

	if res.CacheStats != nil {
		if res.CacheStats.Exists {
			fmt.Fprintf(r.out, "%s cache: %d files, %s\n", iconInfo, res.CacheStats.Files, res.CacheStats.SizeFormatted)
		} else {
			fmt.Fprintf(r.out, "%s cache: not present\n", iconInfo)
		}
	}
}

// bar renders a fixed-width textual progress bar. Filled cells are
// round(pct/100*width).
func (r *Renderer) bar(pct float64) string {
	filled := int(math.Round(pct / 100 * float64(r.barWidth)))
	if filled < 0 {
		filled = 0
	}
	if filled > r.barWidth {
		filled = r.barWidth
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", r.barWidth-filled) + "]"
}
