package structure

import (
	"strings"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
)

// scanLoopRegion walks forward from a loop header and returns the region's
// last line (0-based) and its loop-nesting depth. The walk is bounded by
// analyzer.NestedScanWindow, so regions longer than the window are cut off
// at the window edge.
func scanLoopRegion(lines []string, start int, profile lang.Profile) (end, maxDepth int) {
	if profile.Style == lang.StylePython {
		return scanIndentRegion(lines, start, profile)
	}
	return scanBraceRegion(lines, start, profile)
}

// scanBraceRegion tracks a brace depth counter and counts loop headers seen
// while inside the block. The nesting counter only increments: sibling loops
// inside the same region inflate the depth, which is an accepted imprecision
// of window-local matching.
func scanBraceRegion(lines []string, start int, profile lang.Profile) (end, maxDepth int) {
	limit := min(len(lines), start+analyzer.NestedScanWindow)
	end = limit - 1
	maxDepth = 1
	nest := 1
	depth := 0
	opened := false

	for i := start; i < limit; i++ {
		line := lines[i]
		if i > start && depth > 0 && profile.IsLoopHeader(line) {
			nest++
			if nest > maxDepth {
				maxDepth = nest
			}
		}
		if strings.Contains(line, "{") {
			opened = true
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if opened && depth <= 0 {
			end = i
			break
		}
	}
	return end, maxDepth
}

// scanIndentRegion is the indentation/colon variant: the region extends while
// lines are indented deeper than the header, and any deeper loop header
// raises the nesting depth.
func scanIndentRegion(lines []string, start int, profile lang.Profile) (end, maxDepth int) {
	limit := min(len(lines), start+analyzer.NestedScanWindow)
	base := lang.Indent(lines[start])
	end = start
	maxDepth = 1
	nest := 1

	for i := start + 1; i < limit; i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if lang.Indent(line) <= base {
			break
		}
		end = i
		if profile.IsLoopHeader(line) {
			nest++
			if nest > maxDepth {
				maxDepth = nest
			}
		}
	}
	return end, maxDepth
}
