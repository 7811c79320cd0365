package optimize

import (
	"strings"
	"testing"

	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

func suggest(t *testing.T, tag string, lines ...string) []models.Suggestion {
	t.Helper()
	return New().Suggest(strings.Join(lines, "\n"), lang.ProfileFor(tag))
}

func byTitle(suggestions []models.Suggestion, title string) (models.Suggestion, bool) {
	for _, s := range suggestions {
		if s.Title == title {
			return s, true
		}
	}
	return models.Suggestion{}, false
}

func TestNestedLoopHashMapSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"for (let i = 0; i < a.length; i++) {",
		"  for (let j = 0; j < b.length; j++) {",
		"    if (a[i] == b[j]) found.push(a[i]);",
		"  }",
		"}",
	)

	s, ok := byTitle(out, "Replace nested loop search with a hash map")
	if !ok {
		t.Fatalf("hash map suggestion missing, got %+v", out)
	}
	if s.Line != 1 {
		t.Errorf("Line = %d, want 1", s.Line)
	}
	if s.Priority != models.SeverityHigh {
		t.Errorf("Priority = %q, want high", s.Priority)
	}
	if s.Example == "" {
		t.Error("suggestion has no example")
	}
}

func TestNestedLoopMatrixSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"for (let i = 0; i < n; i++) {",
		"  for (let j = 0; j < n; j++) {",
		"    sum += grid[i][j];",
		"  }",
		"}",
	)

	s, ok := byTitle(out, "Improve cache locality in matrix traversal")
	if !ok {
		t.Fatalf("matrix suggestion missing, got %+v", out)
	}
	if s.Priority != models.SeverityMedium {
		t.Errorf("Priority = %q, want medium", s.Priority)
	}
	if _, ok := byTitle(out, "Replace nested loop search with a hash map"); ok {
		t.Error("hash map suggestion should not fire without a search-shaped context")
	}
}

func TestMemoizationSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"function fib(n) {",
		"  if (n <= 1) return n;",
		"  return fib(n - 1) + fib(n - 2);",
		"}",
	)

	s, ok := byTitle(out, "Add memoization to recursive function")
	if !ok {
		t.Fatalf("memoization suggestion missing, got %+v", out)
	}
	if s.Line != 1 {
		t.Errorf("Line = %d, want 1", s.Line)
	}
	if !strings.Contains(s.Description, "fib") {
		t.Errorf("description does not name the function: %q", s.Description)
	}
	// The branching return carries arithmetic, so it is not tail-shaped.
	if _, ok := byTitle(out, "Convert recursion to iteration"); ok {
		t.Error("iteration suggestion should not fire on a branching return")
	}
}

func TestMemoizationSuggestionPython(t *testing.T) {
	out := suggest(t, "python",
		"def fib(n):",
		"    if n <= 1:",
		"        return n",
		"    return fib(n - 1) + fib(n - 2)",
	)

	if _, ok := byTitle(out, "Add memoization to recursive function"); !ok {
		t.Fatalf("memoization suggestion missing, got %+v", out)
	}
}

func TestIterativeConversionSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"function countdown(n) {",
		"  if (n <= 0) return;",
		"  return countdown(n - 1);",
		"}",
	)

	s, ok := byTitle(out, "Convert recursion to iteration")
	if !ok {
		t.Fatalf("iteration suggestion missing, got %+v", out)
	}
	if s.Priority != models.SeverityMedium {
		t.Errorf("Priority = %q, want medium", s.Priority)
	}
	if _, ok := byTitle(out, "Add memoization to recursive function"); ok {
		t.Error("memoization should not fire without a fibonacci-shaped body")
	}
}

func TestFrontInsertSuggestion(t *testing.T) {
	out := suggest(t, "javascript", "items.unshift(value);")

	if _, ok := byTitle(out, "Use a deque for front insertions"); !ok {
		t.Fatalf("deque suggestion missing, got %+v", out)
	}
}

func TestUniquenessSuggestion(t *testing.T) {
	out := suggest(t, "javascript", "const unique = [];")

	if _, ok := byTitle(out, "Use a set for uniqueness checks"); !ok {
		t.Fatalf("set suggestion missing, got %+v", out)
	}
}

func TestRepeatedLinearLookupSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"if (users.includes(first)) {",
		"  total++;",
		"}",
		"if (users.includes(second)) {",
		"  total++;",
		"}",
	)

	s, ok := byTitle(out, "Replace linear lookups with a hash map")
	if !ok {
		t.Fatalf("lookup suggestion missing, got %+v", out)
	}
	if s.Line != 1 {
		t.Errorf("Line = %d, want 1", s.Line)
	}
}

func TestSingleLookupNoSuggestion(t *testing.T) {
	out := suggest(t, "javascript", "if (users.includes(first)) { total++; }")

	if _, ok := byTitle(out, "Replace linear lookups with a hash map"); ok {
		t.Error("one isolated lookup should not trigger the repeated-lookup suggestion")
	}
}

func TestBinarySearchSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"// values is sorted ascending",
		"for (let i = 0; i < values.length; i++) {",
		"  if (values[i] == target) break;",
		"}",
	)

	s, ok := byTitle(out, "Use binary search on sorted data")
	if !ok {
		t.Fatalf("binary search suggestion missing, got %+v", out)
	}
	if s.Line != 2 {
		t.Errorf("Line = %d, want 2", s.Line)
	}
	if s.Kind != models.SuggestionAlgorithm {
		t.Errorf("Kind = %q, want algorithm", s.Kind)
	}
}

func TestBinarySearchNeedsSortedHint(t *testing.T) {
	out := suggest(t, "javascript",
		"for (let i = 0; i < values.length; i++) {",
		"  if (values[i] == target) break;",
		"}",
	)

	if _, ok := byTitle(out, "Use binary search on sorted data"); ok {
		t.Error("binary search should not fire without a sorted hint in context")
	}
}

func TestSubstringSearchSuggestion(t *testing.T) {
	out := suggest(t, "javascript", "let pos = haystack.indexOf(needle);")

	if _, ok := byTitle(out, "Use an efficient string matching algorithm"); !ok {
		t.Fatalf("string matching suggestion missing, got %+v", out)
	}
}

func TestBubbleSortSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"for (let i = 0; i < n; i++) {",
		"  for (let j = 0; j < n - i - 1; j++) {",
		"    if (arr[j] > arr[j + 1]) {",
		"      let temp = arr[j];",
		"      arr[j] = arr[j + 1];",
		"      arr[j + 1] = temp;",
		"    }",
		"  }",
		"}",
	)

	s, ok := byTitle(out, "Replace bubble sort with an O(n log n) sort")
	if !ok {
		t.Fatalf("bubble sort suggestion missing, got %+v", out)
	}
	if s.Line != 1 {
		t.Errorf("Line = %d, want 1", s.Line)
	}
	if s.Priority != models.SeverityHigh {
		t.Errorf("Priority = %q, want high", s.Priority)
	}
}

func TestSelectionSortSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"for (let i = 0; i < n; i++) {",
		"  let minIdx = i;",
		"  for (let j = i + 1; j < n; j++) {",
		"    if (arr[j] < arr[minIdx]) minIdx = j;",
		"  }",
		"  let temp = arr[i];",
		"  arr[i] = arr[minIdx];",
		"  arr[minIdx] = temp;",
		"}",
	)

	if _, ok := byTitle(out, "Replace selection sort with merge or heap sort"); !ok {
		t.Fatalf("selection sort suggestion missing, got %+v", out)
	}
}

func TestStringBufferSuggestion(t *testing.T) {
	out := suggest(t, "javascript",
		"for (let i = 0; i < parts.length; i++) {",
		`  result += parts[i] + " ";`,
		"}",
	)

	s, ok := byTitle(out, "Build strings with a buffer")
	if !ok {
		t.Fatalf("string buffer suggestion missing, got %+v", out)
	}
	if s.Line != 1 {
		t.Errorf("Line = %d, want 1", s.Line)
	}
}

func TestCharArraySuggestion(t *testing.T) {
	out := suggest(t, "javascript", "let ch = str[i];")

	if _, ok := byTitle(out, "Accumulate characters in an array"); !ok {
		t.Fatalf("char array suggestion missing, got %+v", out)
	}
}

func TestAvoidCopySuggestion(t *testing.T) {
	out := suggest(t, "javascript", "const backup = items.slice();")

	if _, ok := byTitle(out, "Avoid unnecessary copies"); !ok {
		t.Fatalf("copy suggestion missing, got %+v", out)
	}
}

func TestTwoPointerSuggestion(t *testing.T) {
	out := suggest(t, "javascript", "let buffer = new Array(n);")

	s, ok := byTitle(out, "Consider a two-pointer approach")
	if !ok {
		t.Fatalf("two-pointer suggestion missing, got %+v", out)
	}
	if s.Priority != models.SeverityLow {
		t.Errorf("Priority = %q, want low", s.Priority)
	}
}

func TestCleanCodeNoSuggestions(t *testing.T) {
	out := suggest(t, "javascript",
		"const x = compute(input);",
		"return x;",
	)

	if len(out) != 0 {
		t.Errorf("expected no suggestions, got %+v", out)
	}
}

func TestWindow(t *testing.T) {
	lines := []string{"a", "b", "c"}
	tests := []struct {
		from, to int
		want     string
	}{
		{0, 2, "a\nb"},
		{-5, 2, "a\nb"},
		{1, 99, "b\nc"},
		{2, 2, ""},
		{3, 1, ""},
	}
	for _, tt := range tests {
		if got := window(lines, tt.from, tt.to); got != tt.want {
			t.Errorf("window(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
