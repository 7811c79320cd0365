// Package structure implements the structural complexity detector: a single
// pass over the input lines that classifies each line's asymptotic
// contribution and finds loop, nesting, and recursion patterns. All
// recognition is textual; no syntax tree is built, so labels are best-effort
// estimates rather than proven bounds.
package structure

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

// Detect analyzes one snippet. It is total: any input, including empty or
// binary text, produces a result. Empty input yields exactly one line record
// for the single empty line.
func (d *Detector) Detect(code string, profile lang.Profile) *Result {
	lines := strings.Split(code, "\n")

	rec := findSelfCalls(lines, profile)
	patterns := scanPatterns(lines, profile, rec)
	records := classifyLines(lines, profile, nestedDepths(patterns), rec.calls)

	return &Result{
		Lines:       records,
		Patterns:    patterns,
		Suggestions: structuralSuggestions(patterns, records),
		Educational: educationalEntries(patterns),
		Overall:     scorePatterns(patterns),
	}
}

type functionDef struct {
	name string
	line int // 0-based definition line
}

type selfCall struct {
	name string
	line int // 0-based line of the first self-call
}

type recursionInfo struct {
	calls *roaring.Bitmap // all self-call lines, 1-based
	first []selfCall      // one entry per recursive function
}

// findSelfCalls locates function definitions and flags self-referential calls
// within the recursion body window. Any self-call shape counts: the detector
// deliberately assumes exponential growth without structural proof, so plainly
// linear recursion is flagged the same way.
func findSelfCalls(lines []string, profile lang.Profile) recursionInfo {
	info := recursionInfo{calls: roaring.New()}

	var funcs []functionDef
	for i, line := range lines {
		if name, ok := profile.FuncName(line); ok && name != "" {
			funcs = append(funcs, functionDef{name: name, line: i})
		}
	}

	for _, fn := range funcs {
		callRe, err := regexp.Compile(`\b` + regexp.QuoteMeta(fn.name) + `\s*\(`)
		if err != nil {
			continue
		}
		limit := min(len(lines), fn.line+1+analyzer.RecursionBodyWindow)
		firstSeen := -1
		for i := fn.line + 1; i < limit; i++ {
			if callRe.MatchString(lines[i]) {
				info.calls.Add(uint32(i + 1))
				if firstSeen < 0 {
					firstSeen = i
				}
			}
		}
		if firstSeen >= 0 {
			info.first = append(info.first, selfCall{name: fn.name, line: firstSeen})
		}
	}
	return info
}

// scanPatterns finds loop regions, recursion sites, and sort calls, returning
// patterns ordered by start line. Loop regions are consumed greedily: the
// scan resumes after each region's end line, so regions never overlap.
func scanPatterns(lines []string, profile lang.Profile, rec recursionInfo) []models.Pattern {
	var patterns []models.Pattern

	i := 0
	for i < len(lines) {
		if !profile.IsLoopHeader(lines[i]) {
			i++
			continue
		}
		end, depth := scanLoopRegion(lines, i, profile)
		if depth > 1 {
			impact := models.SeverityMedium
			if depth > 2 {
				impact = models.SeverityHigh
			}
			patterns = append(patterns, models.Pattern{
				Kind:        models.PatternNested,
				StartLine:   i + 1,
				EndLine:     end + 1,
				Complexity:  fmt.Sprintf("O(n^%d)", depth),
				Description: fmt.Sprintf("nested loops, %d levels deep", depth),
				Impact:      impact,
			})
		} else {
			patterns = append(patterns, models.Pattern{
				Kind:        models.PatternLoop,
				StartLine:   i + 1,
				EndLine:     end + 1,
				Complexity:  "O(n)",
				Description: "single loop over the input",
				Impact:      models.SeverityMedium,
			})
		}
		i = end + 1
	}

	for _, fc := range rec.first {
		patterns = append(patterns, models.Pattern{
			Kind:        models.PatternRecursion,
			StartLine:   fc.line + 1,
			EndLine:     fc.line + 1,
			Complexity:  "O(2^n)",
			Description: fmt.Sprintf("recursive call to %s", fc.name),
			Impact:      models.SeverityHigh,
		})
	}

	for i, line := range lines {
		if profile.IsSortCall(line) && !profile.IsLoopHeader(line) {
			patterns = append(patterns, models.Pattern{
				Kind:        models.PatternAlgorithm,
				StartLine:   i + 1,
				EndLine:     i + 1,
				Complexity:  "O(n log n)",
				Description: "library sort call",
				Impact:      models.SeverityMedium,
			})
		}
	}

	sort.SliceStable(patterns, func(a, b int) bool {
		return patterns[a].StartLine < patterns[b].StartLine
	})
	return patterns
}

// nestedDepths maps 1-based line numbers inside nested regions to the
// region's depth.
func nestedDepths(patterns []models.Pattern) map[int]int {
	depths := make(map[int]int)
	for _, p := range patterns {
		if p.Kind != models.PatternNested {
			continue
		}
		depth := parseNestedLabel(p.Complexity)
		for n := p.StartLine; n <= p.EndLine; n++ {
			depths[n] = depth
		}
	}
	return depths
}

// classifyLines labels every input line. First matching rule wins.
func classifyLines(lines []string, profile lang.Profile, depths map[int]int, selfCalls *roaring.Bitmap) []models.LineRecord {
	records := make([]models.LineRecord, 0, len(lines))
	for idx, text := range lines {
		n := idx + 1
		rec := models.LineRecord{Line: n, Text: text}
		switch {
		case depths[n] > 1:
			rec.Complexity = fmt.Sprintf("O(n^%d)", depths[n])
			rec.Reason = fmt.Sprintf("inside nested loops (%d levels)", depths[n])
			rec.Severity = models.SeverityHigh
		case profile.IsLoopHeader(text):
			rec.Complexity = "O(n)"
			rec.Reason = "loop iteration over the input"
			rec.Severity = models.SeverityMedium
		case selfCalls.Contains(uint32(n)):
			rec.Complexity = "O(2^n)"
			rec.Reason = "recursive self-call, assumed exponential"
			rec.Severity = models.SeverityHigh
		case profile.IsCollectionOp(text):
			rec.Complexity = "O(n)"
			rec.Reason = "linear search or collection traversal"
			rec.Severity = models.SeverityMedium
		case profile.IsKeyedAccess(text):
			rec.Complexity = "O(1)"
			rec.Reason = "indexed access"
			rec.Severity = models.SeverityLow
		default:
			rec.Complexity = "O(1)"
			rec.Reason = "constant time operation"
			rec.Severity = models.SeverityLow
		}
		records = append(records, rec)
	}
	return records
}

// structuralSuggestions derives suggestions from detected patterns, then adds
// a generic fallback for any remaining high-severity line. The fallback
// checks existing suggestions by line number only, which the bitmap gives us
// directly.
func structuralSuggestions(patterns []models.Pattern, records []models.LineRecord) []models.Suggestion {
	var out []models.Suggestion
	suggested := roaring.New()
	add := func(s models.Suggestion) {
		out = append(out, s)
		suggested.Add(uint32(s.Line))
	}

	for _, p := range patterns {
		switch {
		case p.Kind == models.PatternNested && p.Impact == models.SeverityHigh:
			add(models.Suggestion{
				Line:        p.StartLine,
				Kind:        models.SuggestionOptimization,
				Title:       "Reduce nested loop complexity",
				Description: fmt.Sprintf("This region runs in %s. Restructure the loops or precompute lookups to lower the nesting depth.", p.Complexity),
				Priority:    models.SeverityHigh,
			})
		case p.Kind == models.PatternRecursion:
			add(models.Suggestion{
				Line:        p.StartLine,
				Kind:        models.SuggestionAlgorithm,
				Title:       "Optimize recursive algorithm",
				Description: "Unbounded recursion can grow exponentially. Consider memoization, dynamic programming, or an iterative rewrite.",
				Priority:    models.SeverityHigh,
			})
		}
	}

	for _, r := range records {
		if r.Severity == models.SeverityHigh && !suggested.Contains(uint32(r.Line)) {
			add(models.Suggestion{
				Line:        r.Line,
				Kind:        models.SuggestionRefactor,
				Title:       "Simplify complex operation",
				Description: "This line contributes " + r.Complexity + ". Break the work apart or move invariant parts out of hot paths.",
				Priority:    models.SeverityMedium,
			})
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
