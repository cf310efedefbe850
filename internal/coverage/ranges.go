package coverage

import (
	"fmt"
	"strings"
)

// CompressRanges collapses an ascending, duplicate-free list of positive
// line numbers into a display string of maximal contiguous runs.
//
// A run of one line renders as "N", a longer run as "A-B", and runs are
// joined with ", ". Empty input yields the empty string.
func CompressRanges(lines []int) string {
	if len(lines) == 0 {
		return ""
	}

	var tokens []string
	start, prev := lines[0], lines[0]

	flush := func() {
		if start == prev {
			tokens = append(tokens, fmt.Sprintf("%d", start))
		} else {
			tokens = append(tokens, fmt.Sprintf("%d-%d", start, prev))
		}
	}

	for _, line := range lines[1:] {
		if line == prev+1 {
			prev = line
			continue
		}
		flush()
		start, prev = line, line
	}
	flush()

	return strings.Join(tokens, ", ")
}
