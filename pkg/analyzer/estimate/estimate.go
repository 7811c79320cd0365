// Package estimate orchestrates the structural detector and the heuristic
// optimizer into one analysis call, and provides the batch analyzer used by
// the CLI and the MCP server.
package estimate

import (
	"sort"

	"github.com/augurtools/augur/pkg/analyzer/optimize"
	"github.com/augurtools/augur/pkg/analyzer/structure"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

// Analyze runs both engine components over one snippet and merges their
// suggestions. It is a pure function of (code, language): synchronous,
// deterministic, and total. Unknown language tags fall back to the C-family
// recognizers and malformed input still classifies line by line.
func Analyze(code, language string) *models.AnalysisResult {
	profile := lang.ProfileFor(language)

	det := structure.New().Detect(code, profile)
	sugs := optimize.New().Suggest(code, profile)

	return &models.AnalysisResult{
		Language:    profile.LanguageID,
		Lines:       det.Lines,
		Patterns:    det.Patterns,
		Suggestions: MergeSuggestions(det.Suggestions, sugs),
		Overall:     det.Overall,
		Educational: det.Educational,
	}
}

// MergeSuggestions concatenates suggestion groups, drops duplicates keeping
// the first occurrence per (line, title) key, and stable-sorts descending by
// priority so equal-priority entries keep their pre-sort order.
func MergeSuggestions(groups ...[]models.Suggestion) []models.Suggestion {
	seen := make(map[models.SuggestionKey]struct{})
	var out []models.Suggestion
	for _, group := range groups {
		for _, s := range group {
			if _, dup := seen[s.Key()]; dup {
				continue
			}
			seen[s.Key()] = struct{}{}
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Weight() > out[j].Priority.Weight()
	})
	return out
}
