package optimize

import (
	"regexp"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

var (
	bubbleToken    = regexp.MustCompile(`(?i)\bbubble\b`)
	selectionToken = regexp.MustCompile(`(?i)\bselection\b`)
	swapShape      = regexp.MustCompile(`(?i)\bswap\s*\(|\btemp\s*=|\btmp\s*=`)
	adjacentIndex  = regexp.MustCompile(`\w+\s*\+\s*1\s*\]`)
	minTracking    = regexp.MustCompile(`(?i)\bmin(_?idx|_?index|imum)?\b`)
)

// sortShapeSuggestions recognizes hand-rolled quadratic sorts: bubble sort by
// name or by a swap plus adjacent-index comparison inside a nested loop, and
// selection sort by name or by min-tracking plus a swap.
func sortShapeSuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion
	for i := range lines {
		if !profile.IsLoopHeader(lines[i]) {
			continue
		}
		limit := min(len(lines), i+1+analyzer.LoopContextWindow)
		hasInner := false
		for j := i + 1; j < limit; j++ {
			if profile.IsLoopHeader(lines[j]) {
				hasInner = true
				break
			}
		}
		ctx := window(lines, i, i+1+analyzer.LoopContextWindow)

		if bubbleToken.MatchString(ctx) ||
			(hasInner && swapShape.MatchString(ctx) && adjacentIndex.MatchString(ctx)) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionAlgorithm,
				Title:       "Replace bubble sort with an O(n log n) sort",
				Description: "Adjacent-swap sorting compares every pair, costing O(n^2). The standard library sort runs in O(n log n).",
				Example:     exampleLibrarySort,
				Priority:    models.SeverityHigh,
			})
		}

		if selectionToken.MatchString(ctx) ||
			(hasInner && swapShape.MatchString(ctx) && minTracking.MatchString(ctx)) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionAlgorithm,
				Title:       "Replace selection sort with merge or heap sort",
				Description: "Selecting the minimum on each pass rescans the remainder, costing O(n^2). Merge sort or heap sort keeps it at O(n log n).",
				Example:     exampleLibrarySort,
				Priority:    models.SeverityHigh,
			})
		}
	}
	return out
}
