// Package optimize implements the heuristic optimizer: a catalog of
// shape-specific recognizers that re-scan the raw input lines and emit
// targeted improvement suggestions with canned example rewrites. Each
// recognizer family runs as an independent forward scan, so one line can
// trigger several families at once.
package optimize

import (
	"strings"

	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

// Optimizer produces shape-based optimization suggestions. It is stateless
// and safe for concurrent use.
type Optimizer struct{}

// Option is a functional option for configuring Optimizer.
type Option func(*Optimizer)

// New creates an optimizer.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// recognizer is one suggestion family scanning the full line slice.
type recognizer func(lines []string, profile lang.Profile) []models.Suggestion

var recognizers = []recognizer{
	nestedLoopSuggestions,
	recursionSuggestions,
	dataStructureSuggestions,
	searchSuggestions,
	sortShapeSuggestions,
	stringOpSuggestions,
	memorySuggestions,
}

// Suggest runs every recognizer family over the input and concatenates their
// findings. Deduplication and priority ordering are the caller's job; the
// families here are independent by design.
func (o *Optimizer) Suggest(code string, profile lang.Profile) []models.Suggestion {
	lines := strings.Split(code, "\n")
	var out []models.Suggestion
	for _, rec := range recognizers {
		out = append(out, rec(lines, profile)...)
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// window joins lines[from:to) for context matching, clamping both ends.
func window(lines []string, from, to int) string {
	from = max(from, 0)
	to = min(to, len(lines))
	if from >= to {
		return ""
	}
	return strings.Join(lines[from:to], "\n")
}
