// Package lang defines the supported-language catalog and the per-language
// recognizer profiles used by the analysis engine. Recognition is purely
// textual: each profile is a small set of regular expressions, not a parser.
package lang

// Style selects the recognizer family for a language. Every supported
// language maps onto one of two shapes: bracket/parenthesis languages and
// indentation/colon languages.
type Style string

const (
	StyleCFamily Style = "c-family"
	StylePython  Style = "python"
)

// Language describes one entry in the supported-language catalog.
type Language struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Keywords   []string `json:"keywords" yaml:"keywords"`
	LoopHint   string   `json:"loop_hint" yaml:"loop_hint"`
	Style      Style    `json:"style" yaml:"style"`
}

// Catalog lists every language the engine recognizes. The loop hints here and
// the profile regexes in profile.go must stay consistent: the hint documents
// the shape the profile's loop-header regex matches.
var Catalog = []Language{
	{
		ID:         "javascript",
		Name:       "JavaScript",
		Extensions: []string{".js", ".jsx", ".mjs"},
		Keywords:   []string{"function", "const", "let", "var", "console.log", "=>", "async", "await"},
		LoopHint:   "for (...) / while (...)",
		Style:      StyleCFamily,
	},
	{
		ID:         "typescript",
		Name:       "TypeScript",
		Extensions: []string{".ts", ".tsx"},
		Keywords:   []string{"interface", "type ", ": string", ": number", "enum", "implements", "readonly"},
		LoopHint:   "for (...) / while (...)",
		Style:      StyleCFamily,
	},
	{
		ID:         "python",
		Name:       "Python",
		Extensions: []string{".py", ".pyw"},
		Keywords:   []string{"def ", "import ", "self", "elif", "lambda", "None", "print("},
		LoopHint:   "for ... in ...: / while ...:",
		Style:      StylePython,
	},
	{
		ID:         "java",
		Name:       "Java",
		Extensions: []string{".java"},
		Keywords:   []string{"public class", "private ", "protected ", "extends", "implements", "System.out"},
		LoopHint:   "for (...) / while (...)",
		Style:      StyleCFamily,
	},
	{
		ID:         "c",
		Name:       "C",
		Extensions: []string{".c", ".h"},
		Keywords:   []string{"#include", "printf", "malloc", "struct ", "void ", "sizeof"},
		LoopHint:   "for (...) / while (...) / do {",
		Style:      StyleCFamily,
	},
	{
		ID:         "cpp",
		Name:       "C++",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"},
		Keywords:   []string{"#include", "std::", "cout", "template", "namespace", "vector<"},
		LoopHint:   "for (...) / while (...) / do {",
		Style:      StyleCFamily,
	},
	{
		ID:         "go",
		Name:       "Go",
		Extensions: []string{".go"},
		Keywords:   []string{"func ", "package ", ":=", "chan ", "defer ", "goroutine", "fmt."},
		LoopHint:   "for ... {",
		Style:      StyleCFamily,
	},
	{
		ID:         "rust",
		Name:       "Rust",
		Extensions: []string{".rs"},
		Keywords:   []string{"fn ", "let mut", "impl ", "match ", "pub ", "::<"},
		LoopHint:   "for ... in ... { / while ... { / loop {",
		Style:      StyleCFamily,
	},
	{
		ID:         "ruby",
		Name:       "Ruby",
		Extensions: []string{".rb"},
		Keywords:   []string{"def ", "end", "puts", "require", "attr_", "nil?"},
		LoopHint:   "for ... in ... / while ... / .each",
		Style:      StylePython,
	},
}

// ByID returns the catalog entry for an ID, or false when unknown.
func ByID(id string) (Language, bool) {
	for _, l := range Catalog {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// ByExtension returns the catalog entry owning a file extension.
func ByExtension(ext string) (Language, bool) {
	for _, l := range Catalog {
		for _, e := range l.Extensions {
			if e == ext {
				return l, true
			}
		}
	}
	return Language{}, false
}
