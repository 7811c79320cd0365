package optimize

import (
	"regexp"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

var (
	frontInsert  = regexp.MustCompile(`\.unshift\(|\.insert\(\s*0\s*,|push_front\s*\(|array_unshift\s*\(`)
	linearLookup = regexp.MustCompile(`\.indexOf\(|\.includes\(|\.find\(|\.contains\(|\.index\(|\.count\(|\sin\s`)
	uniqueTokens = regexp.MustCompile(`(?i)\bunique\b|\bdistinct\b|\bdedup`)
	arrayTokens  = regexp.MustCompile(`(?i)\barray\b|\blist\b|\bvector\b|\[\]`)
)

// dataStructureSuggestions flags container misuse: front insertion on
// array-like structures, repeated linear lookups in a small window, and
// uniqueness bookkeeping on sequential containers.
func dataStructureSuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion

	for i, line := range lines {
		if frontInsert.MatchString(line) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Use a deque for front insertions",
				Description: "Inserting at the front of an array shifts every element on each call. A double-ended queue makes front insertion O(1).",
				Example:     exampleDeque,
				Priority:    models.SeverityMedium,
			})
		}
		if uniqueTokens.MatchString(line) && arrayTokens.MatchString(line) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Use a set for uniqueness checks",
				Description: "Tracking distinct values in an array costs a linear scan per check. A set answers membership in O(1).",
				Example:     exampleSet,
				Priority:    models.SeverityMedium,
			})
		}
	}

	// Two linear lookups close together suggest the same collection is
	// being scanned repeatedly.
	i := 0
	for i < len(lines) {
		if !linearLookup.MatchString(lines[i]) {
			i++
			continue
		}
		second := -1
		limit := min(len(lines), i+1+analyzer.NearContextWindow)
		for j := i + 1; j < limit; j++ {
			if linearLookup.MatchString(lines[j]) {
				second = j
				break
			}
		}
		if second < 0 {
			i++
			continue
		}
		out = append(out, models.Suggestion{
			Line:        i + 1,
			Kind:        models.SuggestionOptimization,
			Title:       "Replace linear lookups with a hash map",
			Description: "Several linear searches over the same data run close together. Index the data in a hash map once and reuse it.",
			Example:     exampleHashMapLookup,
			Priority:    models.SeverityHigh,
		})
		i = second + 1
	}

	return out
}
