package optimize

import (
	"regexp"

	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

var (
	copyCall = regexp.MustCompile(`\.copy\s*\(|\.clone\s*\(|\.slice\(\s*\)|Object\.assign\s*\(|memcpy\s*\(|\bdeepcopy\s*\(|\.dup\b`)
	allocN   = regexp.MustCompile(`new\s+Array\s*\(|make\(\[\]|malloc\s*\(|calloc\s*\(|new\s+\w+\s*\[|\[\s*0\s*\]\s*\*\s*\w+`)
)

// memorySuggestions flags explicit duplication and n-sized auxiliary
// allocations that an in-place or two-pointer approach could avoid.
func memorySuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion
	for i, line := range lines {
		if copyCall.MatchString(line) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionRefactor,
				Title:       "Avoid unnecessary copies",
				Description: "Copying a structure duplicates its full contents. Pass a reference, or restrict the copy to the slice actually needed.",
				Example:     exampleAvoidCopy,
				Priority:    models.SeverityMedium,
			})
		}
		if allocN.MatchString(line) {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionOptimization,
				Title:       "Consider a two-pointer approach",
				Description: "An input-sized auxiliary structure doubles memory use. Many scans can run in place with two indexes instead.",
				Example:     exampleTwoPointer,
				Priority:    models.SeverityLow,
			})
		}
	}
	return out
}
