package optimize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

// placeholderName substitutes for a function name when extraction fails.
const placeholderName = "recursiveFunc"

var (
	minusOneArg    = regexp.MustCompile(`\b\w+\s*-\s*1\b`)
	minusTwoArg    = regexp.MustCompile(`\b\w+\s*-\s*2\b`)
	bareReturnCall = regexp.MustCompile(`\breturn\s+[A-Za-z_$][\w$]*\s*\(`)
)

// recursionSuggestions inspects function definitions whose body window calls
// the function itself. A fibonacci shape (n-1 and n-2 style arguments, or the
// literal name) earns a memoization suggestion; a return of the bare call with
// no arithmetic around it earns an iterative-conversion suggestion.
func recursionSuggestions(lines []string, profile lang.Profile) []models.Suggestion {
	var out []models.Suggestion
	for i := range lines {
		name, ok := profile.FuncName(lines[i])
		if !ok {
			continue
		}
		if name == "" {
			name = placeholderName
		}
		callRe, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
		if err != nil {
			continue
		}

		bodyEnd := min(len(lines), i+1+analyzer.RecursionBodyWindow)
		selfRef := false
		for j := i + 1; j < bodyEnd; j++ {
			if callRe.MatchString(lines[j]) {
				selfRef = true
				break
			}
		}
		if !selfRef {
			continue
		}

		fibCtx := window(lines, i, i+analyzer.FibShapeWindow)
		if (minusOneArg.MatchString(fibCtx) && minusTwoArg.MatchString(fibCtx)) ||
			strings.Contains(strings.ToLower(fibCtx), "fibonacci") {
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionAlgorithm,
				Title:       "Add memoization to recursive function",
				Description: fmt.Sprintf("%s branches into overlapping subproblems and recomputes them exponentially many times. Cache results per argument to make each subproblem O(1) after the first call.", name),
				Example:     memoizationExample(name),
				Priority:    models.SeverityHigh,
			})
		}

		for j := i + 1; j < bodyEnd; j++ {
			line := lines[j]
			if !bareReturnCall.MatchString(line) || !callRe.MatchString(line) {
				continue
			}
			if strings.ContainsAny(line, "+*") {
				continue
			}
			out = append(out, models.Suggestion{
				Line:        i + 1,
				Kind:        models.SuggestionRefactor,
				Title:       "Convert recursion to iteration",
				Description: fmt.Sprintf("%s returns its recursive call directly, so the call stack carries no pending work. A loop computes the same result without stack growth.", name),
				Example:     iterativeExample(name),
				Priority:    models.SeverityMedium,
			})
			break
		}
	}
	return out
}
