package structure

import "github.com/augurtools/augur/pkg/models"

// conceptEntries is the static lookup of educational content keyed by the
// pattern kinds that carry one.
var conceptEntries = map[models.PatternKind]models.EducationalEntry{
	models.PatternNested: {
		Concept:     "Nested Loops",
		Explanation: "Each level of loop nesting multiplies the work by the input size. Two nested loops over n items perform on the order of n*n operations.",
		Example:     "for (i = 0; i < n; i++) {\n  for (j = 0; j < n; j++) {\n    // runs n*n times\n  }\n}",
	},
	models.PatternRecursion: {
		Concept:     "Recursion",
		Explanation: "A function that calls itself more than once per input can revisit the same subproblems exponentially many times. Memoization or an iterative rewrite avoids the repeated work.",
		Example:     "// fib(n) recomputes fib(n-2) twice\nint fib(int n) {\n  if (n <= 1) return n;\n  return fib(n - 1) + fib(n - 2);\n}",
	},
}

// baselineConcept is always present, regardless of what was detected.
var baselineConcept = models.EducationalEntry{
	Concept:     "Big O Notation",
	Explanation: "Big O describes how running time grows with input size, ignoring constant factors. O(1) stays flat, O(n) grows linearly, O(n^2) quadratically, and O(2^n) doubles with every added element.",
	Example:     "O(1)  array[i]\nO(n)  linear scan\nO(n^2)  nested loops\nO(2^n)  naive fibonacci",
}

// educationalEntries collects one entry per distinct pattern kind, in order
// of first detection, with the baseline concept appended last.
func educationalEntries(patterns []models.Pattern) []models.EducationalEntry {
	var out []models.EducationalEntry
	seen := make(map[models.PatternKind]bool)
	for _, p := range patterns {
		if seen[p.Kind] {
			continue
		}
		seen[p.Kind] = true
		if entry, ok := conceptEntries[p.Kind]; ok {
			out = append(out, entry)
		}
	}
	return append(out, baselineConcept)
}
