// Package models defines the shared result types produced by the analysis engine.
package models

// Severity is a three-level qualitative rating used for both per-line
// annotations and suggestion priorities.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Weight returns a numeric rank for sorting (higher = more severe).
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// PatternKind classifies a detected structural region.
type PatternKind string

const (
	PatternLoop      PatternKind = "loop"
	PatternNested    PatternKind = "nested"
	PatternRecursion PatternKind = "recursion"
	PatternAlgorithm PatternKind = "algorithm"
)

// SuggestionKind classifies an improvement suggestion.
type SuggestionKind string

const (
	SuggestionOptimization SuggestionKind = "optimization"
	SuggestionRefactor     SuggestionKind = "refactor"
	SuggestionAlgorithm    SuggestionKind = "algorithm"
)

// LineRecord is the per-line complexity annotation. One record is produced
// for every input line, in input order.
type LineRecord struct {
	Line       int      `json:"line"`
	Text       string   `json:"text"`
	Complexity string   `json:"complexity"`
	Reason     string   `json:"reason"`
	Severity   Severity `json:"severity"`
}

// Pattern is a detected structural region spanning one or more lines.
// StartLine and EndLine are 1-based and StartLine <= EndLine.
type Pattern struct {
	Kind        PatternKind `json:"kind"`
	StartLine   int         `json:"start_line"`
	EndLine     int         `json:"end_line"`
	Complexity  string      `json:"complexity"`
	Description string      `json:"description"`
	Impact      Severity    `json:"impact"`
}

// Suggestion is a ranked improvement recommendation anchored to a line.
type Suggestion struct {
	Line        int            `json:"line"`
	Kind        SuggestionKind `json:"kind"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Example     string         `json:"example,omitempty"`
	Priority    Severity       `json:"priority"`
}

// SuggestionKey is the identity of a suggestion for deduplication. Two
// suggestions with the same line and title are the same suggestion even when
// their descriptions differ.
type SuggestionKey struct {
	Line  int
	Title string
}

// Key returns the deduplication identity of the suggestion.
func (s Suggestion) Key() SuggestionKey {
	return SuggestionKey{Line: s.Line, Title: s.Title}
}

// Overall summarizes the estimated asymptotic behavior of the whole input.
// Score is a derived 0-100 efficiency score. Space analysis is not
// implemented; Space is always reported as O(1).
type Overall struct {
	Time  string `json:"time"`
	Space string `json:"space"`
	Score int    `json:"score"`
}

// EducationalEntry explains an algorithmic concept surfaced by the analysis.
type EducationalEntry struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// AnalysisResult is the complete output of one analysis call. It is produced
// fresh per call and never mutated afterwards.
type AnalysisResult struct {
	Language    string             `json:"language"`
	Lines       []LineRecord       `json:"lines"`
	Patterns    []Pattern          `json:"patterns"`
	Suggestions []Suggestion       `json:"suggestions"`
	Overall     Overall            `json:"overall"`
	Educational []EducationalEntry `json:"educational"`
}
