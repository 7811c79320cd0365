package lang

import (
	"path/filepath"
	"strings"
)

// Detect guesses the language of a snippet. The filename extension wins when
// it maps to a catalog entry; otherwise each language's keyword list is
// scored against the code and the best match is returned. Returns "unknown"
// when nothing scores, which resolves to the C-family profile downstream.
func Detect(code, filename string) string {
	if filename != "" {
		if l, ok := ByExtension(strings.ToLower(filepath.Ext(filename))); ok {
			return l.ID
		}
	}

	bestID := "unknown"
	bestScore := 0
	for _, l := range Catalog {
		score := 0
		for _, kw := range l.Keywords {
			score += strings.Count(code, kw)
		}
		if score > bestScore {
			bestScore = score
			bestID = l.ID
		}
	}
	if bestScore < 2 {
		return "unknown"
	}
	return bestID
}
