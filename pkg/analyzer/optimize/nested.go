package optimize

import (
	"regexp"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

var (
	searchContext = regexp.MustCompile(`(?i)==|\bfind|\bsearch`)
	matrixContext = regexp.MustCompile(`(?i)\]\s*\[|\bmatrix\b|\bgrid\b`)
)

// nestedLoopSuggestions flags loop headers with an inner loop in the
// lookahead window. A search-shaped context suggests replacing the inner scan
// with a hash map; a matrix-shaped context suggests traversal reordering.
func nestedLoopSuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion
	for i := range lines {
		if !profile.IsLoopHeader(lines[i]) {
			continue
		}
		inner := -1
		limit := min(len(lines), i+1+analyzer.LoopContextWindow)
		for j := i + 1; j < limit; j++ {
			if profile.IsLoopHeader(lines[j]) {
				inner = j
				break
			}
		}
		if inner < 0 {
			continue
		}

		ctx := window(lines, i, i+analyzer.NestedScanWindow)
		if searchContext.MatchString(ctx) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Replace nested loop search with a hash map",
				Description: "The inner loop scans for a match on every outer iteration. Build a hash map once and look items up in O(1) instead.",
				Example:     exampleHashMapLookup,
				Priority:    models.SeverityHigh,
			})
		}
		if matrixContext.MatchString(ctx) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Improve cache locality in matrix traversal",
				Description: "Two-dimensional access inside nested loops is sensitive to traversal order. Iterate rows in the outer loop so memory is read sequentially.",
				Example:     exampleRowMajor,
				Priority:    models.SeverityMedium,
			})
		}
	}
	return out
}
