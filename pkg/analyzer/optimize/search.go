package optimize

import (
	"regexp"
	"strings"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

var (
	sortedHint    = regexp.MustCompile(`(?i)\bsorted\b|\bascending\b`)
	substringCall = regexp.MustCompile(`\.indexOf\(|\.find\(|strstr\s*\(|\.index\(|\.search\(|\.substring\(`)
)

// searchSuggestions flags loops that test equality over data the surrounding
// context calls sorted, and any substring/index-of call that would repeat a
// naive scan.
func searchSuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion

	for i := range lines {
		if !profile.IsLoopHeader(lines[i]) {
			continue
		}
		body := window(lines, i, i+1+analyzer.NearContextWindow)
		if !strings.Contains(body, "==") {
			continue
		}
		ctx := window(lines, i-analyzer.NearContextWindow, i+1+analyzer.NearContextWindow)
		if sortedHint.MatchString(ctx) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionAlgorithm,
				Title:       "Use binary search on sorted data",
				Description: "The data is already sorted, so a linear equality scan wastes the ordering. Binary search finds the target in O(log n).",
				Example:     exampleBinarySearch,
				Priority:    models.SeverityHigh,
			})
		}
	}

	for i, line := range lines {
		if substringCall.MatchString(line) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Use an efficient string matching algorithm",
				Description: "Naive substring search rescans the text on every call. For repeated searches over the same text, a linear-time matcher such as KMP amortizes the cost.",
				Example:     exampleStringSearch,
				Priority:    models.SeverityMedium,
			})
		}
	}

	return out
}
