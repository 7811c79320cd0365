package models

// String implementations for enum-like types.
// These are required for toon serialization, which uses fmt.Stringer.

func (s Severity) String() string       { return string(s) }
func (k PatternKind) String() string    { return string(k) }
func (k SuggestionKind) String() string { return string(k) }
