package structure

import (
	"regexp"
	"strconv"

	"github.com/augurtools/augur/pkg/models"
)

var nestedLabel = regexp.MustCompile(`^O\(n\^(\d+)\)$`)

// parseNestedLabel returns k for a label of the form O(n^k), or 0.
func parseNestedLabel(label string) int {
	m := nestedLabel.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	k, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return k
}

// scorePatterns folds the detected patterns, in detection order, into the
// overall time label and efficiency score.
//
// The fold overwrites the time label with each qualifying pattern, so the
// final label comes from the last qualifying pattern rather than the
// worst-case one. Downstream consumers and the test suite are pinned to this
// sequential-fold behavior; do not replace it with a max.
//
// Space analysis is not implemented: space is always O(1). This is a known
// limitation, not an inference.
func scorePatterns(patterns []models.Pattern) models.Overall {
	overall := models.Overall{Time: "O(1)", Space: "O(1)", Score: 100}

	for _, p := range patterns {
		switch {
		case parseNestedLabel(p.Complexity) > 0:
			k := parseNestedLabel(p.Complexity)
			overall.Time = p.Complexity
			overall.Score -= 20 * k
		case p.Complexity == "O(2^n)":
			overall.Time = "O(2^n)"
			overall.Score -= 40
		case p.Complexity == "O(n log n)":
			overall.Time = "O(n log n)"
			overall.Score -= 15
		case p.Complexity == "O(n)" && overall.Time == "O(1)":
			overall.Time = "O(n)"
			overall.Score -= 10
		}
	}

	if overall.Score < 0 {
		overall.Score = 0
	}
	if overall.Score > 100 {
		overall.Score = 100
	}
	return overall
}
