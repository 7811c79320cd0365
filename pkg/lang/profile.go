package lang

import (
	"regexp"
	"strings"
)

// Profile bundles the recognizer predicates for one language style. A profile
// is resolved once per analysis call and shared read-only after that.
type Profile struct {
	Style      Style
	LanguageID string

	loopHeader   *regexp.Regexp
	funcDefs     []*regexp.Regexp
	collectionOp *regexp.Regexp
	keyedAccess  *regexp.Regexp
	sortCall     *regexp.Regexp
}

var (
	cLoopHeader   = regexp.MustCompile(`\b(for|while)\s*\(|\bfor\s+[^(]\S*.*\{|\bdo\s*\{|\bloop\s*\{`)
	pyLoopHeader  = regexp.MustCompile(`^\s*(for\s+.+\s+in\s+.+:|while\s+.+:)|\.each\b`)
	cCollectionOp = regexp.MustCompile(`\.includes\(|\.indexOf\(|\.find\(|\.filter\(|\.map\(|\.contains\(|\.some\(|\.every\(|strstr\s*\(|strchr\s*\(`)
	pyCollection  = regexp.MustCompile(`\sin\s|\.index\(|\.count\(|filter\(|map\(|\.find\(|\.include\?`)
	keyedAccess   = regexp.MustCompile(`[A-Za-z_]\w*\s*\[[^\[\]]+\]`)
	cSortCall     = regexp.MustCompile(`\.sort\(|\bqsort\s*\(|\bsort\.Slice\b|\bsort\.Sort\b|std::sort\b|Arrays\.sort\b|Collections\.sort\b`)
	pySortCall    = regexp.MustCompile(`\bsorted\s*\(|\.sort\(|\.sort_by\b`)

	cFuncDefs = []*regexp.Regexp{
		regexp.MustCompile(`\bfunction\s+([A-Za-z_$][\w$]*)\s*\(`),
		regexp.MustCompile(`\bfunc\s+(?:\([^)]*\)\s*)?([A-Za-z_]\w*)\s*\(`),
		regexp.MustCompile(`\bfn\s+([A-Za-z_]\w*)\s*[(<]`),
		regexp.MustCompile(`(?:^|\s)(?:[A-Za-z_][\w<>\[\],.:*&]*\s+)+([A-Za-z_]\w*)\s*\([^;!=<>]*\)\s*\{`),
		regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?(?:function\b|\()`),
	}
	pyFuncDefs = []*regexp.Regexp{
		regexp.MustCompile(`^\s*def\s+([A-Za-z_]\w*[!?]?)`),
	}
)

var (
	cFamilyProfile = Profile{
		Style:        StyleCFamily,
		loopHeader:   cLoopHeader,
		funcDefs:     cFuncDefs,
		collectionOp: cCollectionOp,
		keyedAccess:  keyedAccess,
		sortCall:     cSortCall,
	}
	pythonProfile = Profile{
		Style:        StylePython,
		loopHeader:   pyLoopHeader,
		funcDefs:     pyFuncDefs,
		collectionOp: pyCollection,
		keyedAccess:  keyedAccess,
		sortCall:     pySortCall,
	}
)

// ProfileFor resolves the recognizer profile for a language tag. Unrecognized
// tags fall back to the C-family profile.
func ProfileFor(tag string) Profile {
	l, ok := ByID(strings.ToLower(strings.TrimSpace(tag)))
	if !ok {
		p := cFamilyProfile
		p.LanguageID = "unknown"
		return p
	}
	var p Profile
	if l.Style == StylePython {
		p = pythonProfile
	} else {
		p = cFamilyProfile
	}
	p.LanguageID = l.ID
	return p
}

// IsLoopHeader reports whether a line opens a loop.
func (p Profile) IsLoopHeader(line string) bool {
	return p.loopHeader.MatchString(line)
}

// IsCollectionOp reports whether a line performs a collection
// search/iteration operation (member test, filter/map call, substring search).
func (p Profile) IsCollectionOp(line string) bool {
	return p.collectionOp.MatchString(line)
}

// IsKeyedAccess reports whether a line performs a bracket-indexed read or
// write.
func (p Profile) IsKeyedAccess(line string) bool {
	return p.keyedAccess.MatchString(line)
}

// IsSortCall reports whether a line invokes a library sort.
func (p Profile) IsSortCall(line string) bool {
	return p.sortCall.MatchString(line)
}

// FuncName extracts a function name from a definition-shaped line. The second
// return is false when the line does not look like a function definition.
func (p Profile) FuncName(line string) (string, bool) {
	for _, re := range p.funcDefs {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Indent returns the leading-whitespace width of a line, counting tabs as
// four columns. Used by the python-style block scanner.
func Indent(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
