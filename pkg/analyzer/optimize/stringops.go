package optimize

import (
	"regexp"
	"strings"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

var (
	charIndexAccess = regexp.MustCompile(`\w+\s*\[\s*\w+\s*\]`)
	stringTypedRef  = regexp.MustCompile(`(?i)\bstr(ing)?\b|\bchar\b|\btext\b`)
)

// hasStringConcat reports an append/concatenation operator next to a string
// literal on the line.
func hasStringConcat(line string) bool {
	if !strings.ContainsAny(line, `"'`+"`") {
		return false
	}
	return strings.Contains(line, "+=") || strings.Contains(line, "+ ") || strings.Contains(line, " +")
}

// stringOpSuggestions flags string building inside loops and per-character
// string access.
func stringOpSuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion

	for i := range lines {
		if !profile.IsLoopHeader(lines[i]) {
			continue
		}
		limit := min(len(lines), i+1+analyzer.NearContextWindow)
		for j := i + 1; j < limit; j++ {
			if hasStringConcat(lines[j]) {
				out = append(out, models.Suggestion{
					Line:        i + 1,
					Kind:        models.SuggestionOptimization,
					Title:       "Build strings with a buffer",
					Description: "Concatenating immutable strings inside a loop copies the accumulated prefix on every iteration, costing O(n^2) overall. Append to a buffer or array and join once.",
					Example:     exampleStringBuffer,
					Priority:    models.SeverityHigh,
				})
				break
			}
		}
	}

	for i, line := range lines {
		if charIndexAccess.MatchString(line) && stringTypedRef.MatchString(line) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Accumulate characters in an array",
				Description: "Per-character work on a string rebuilds intermediate strings. Collect characters in an array and join at the end.",
				Example:     exampleCharArray,
				Priority:    models.SeverityMedium,
			})
		}
	}

	return out
}
