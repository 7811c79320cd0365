package estimate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/augurtools/augur/pkg/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchAnalyze(t *testing.T) {
	dir := t.TempDir()
	nested := writeFile(t, dir, "nested.go", `package main

func pairSums(items []int) int {
	total := 0
	for i := 0; i < len(items); i++ {
		for j := 0; j < len(items); j++ {
			total += items[i] * items[j]
		}
	}
	return total
}
`)
	flat := writeFile(t, dir, "flat.go", `package main

func sum(items []int) int {
	total := 0
	for _, v := range items {
		total += v
	}
	return total
}
`)

	a := New()
	defer a.Close()

	analysis, err := a.Analyze(context.Background(), []string{nested, flat})
	if err != nil {
		t.Fatal(err)
	}

	if len(analysis.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(analysis.Files))
	}
	// Results are sorted by path regardless of completion order.
	if analysis.Files[0].Path != flat || analysis.Files[1].Path != nested {
		t.Errorf("paths not sorted: %q, %q", analysis.Files[0].Path, analysis.Files[1].Path)
	}
	if analysis.Files[1].Result.Overall.Time != "O(n^2)" {
		t.Errorf("nested file time = %q, want O(n^2)", analysis.Files[1].Result.Overall.Time)
	}
	if analysis.Summary.TotalFiles != 2 {
		t.Errorf("Summary.TotalFiles = %d, want 2", analysis.Summary.TotalFiles)
	}
	if analysis.Summary.WorstTime != "O(n^2)" {
		t.Errorf("Summary.WorstTime = %q, want O(n^2)", analysis.Summary.WorstTime)
	}
}

func TestBatchAnalyzeSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.go", "package main\n\nfunc f() {}\n")

	a := New(WithMaxFileSize(4))
	defer a.Close()

	analysis, err := a.Analyze(context.Background(), []string{path})
	if err != nil {
		t.Fatal(err)
	}
	// Oversized files are skipped, not fatal.
	if len(analysis.Files) != 0 {
		t.Errorf("files = %d, want 0", len(analysis.Files))
	}
}

func TestBatchAnalyzeMissingFile(t *testing.T) {
	a := New()
	defer a.Close()

	analysis, err := a.Analyze(context.Background(), []string{"/nope/missing.go"})
	if err != nil {
		t.Fatal(err)
	}
	if len(analysis.Files) != 0 {
		t.Errorf("files = %d, want 0", len(analysis.Files))
	}
	if analysis.Summary.TotalFiles != 0 {
		t.Errorf("Summary.TotalFiles = %d, want 0", analysis.Summary.TotalFiles)
	}
}

type mapSource map[string]string

func (m mapSource) Read(path string) ([]byte, error) {
	content, ok := m[path]
	if !ok {
		return nil, errors.New("not found: " + path)
	}
	return []byte(content), nil
}

func TestAnalyzeFromSource(t *testing.T) {
	src := mapSource{
		"app.py": "def main():\n    for x in items:\n        print(x)\n",
	}

	a := New()
	defer a.Close()

	analysis, err := a.AnalyzeFromSource(context.Background(), []string{"app.py", "gone.py"}, src)
	if err != nil {
		t.Fatal(err)
	}
	if len(analysis.Files) != 1 {
		t.Fatalf("files = %d, want 1", len(analysis.Files))
	}
	if analysis.Files[0].Language != "python" {
		t.Errorf("language = %q, want python", analysis.Files[0].Language)
	}
	if analysis.Files[0].Result.Overall.Time != "O(n)" {
		t.Errorf("time = %q, want O(n)", analysis.Files[0].Result.Overall.Time)
	}
}

func TestSummarize(t *testing.T) {
	mk := func(path string, score int, time string, lines, sugs int) models.FileResult {
		r := models.AnalysisResult{Overall: models.Overall{Score: score, Time: time}}
		r.Lines = make([]models.LineRecord, lines)
		r.Suggestions = make([]models.Suggestion, sugs)
		return models.FileResult{Path: path, Result: r}
	}

	s := summarize([]models.FileResult{
		mk("a.go", 90, "O(n)", 10, 1),
		mk("b.go", 60, "O(n^2)", 20, 3),
	})

	if s.TotalFiles != 2 || s.TotalLines != 30 || s.TotalSuggestions != 4 {
		t.Errorf("totals = %d/%d/%d, want 2/30/4", s.TotalFiles, s.TotalLines, s.TotalSuggestions)
	}
	if s.AvgScore != 75 {
		t.Errorf("AvgScore = %v, want 75", s.AvgScore)
	}
	if s.MinScore != 60 || s.MaxScore != 90 {
		t.Errorf("Min/Max = %d/%d, want 60/90", s.MinScore, s.MaxScore)
	}
	if s.P50Score < 60 || s.P50Score > 90 {
		t.Errorf("P50Score = %d, out of range", s.P50Score)
	}
	if s.P90Score < s.P50Score || s.P90Score > 90 {
		t.Errorf("P90Score = %d, out of range", s.P90Score)
	}
	if s.WorstTime != "O(n^2)" {
		t.Errorf("WorstTime = %q, want O(n^2)", s.WorstTime)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(nil)
	if s.TotalFiles != 0 || s.AvgScore != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if s.WorstTime != "O(1)" {
		t.Errorf("WorstTime = %q, want O(1)", s.WorstTime)
	}
}

func TestBuildAnalysisSortsByPath(t *testing.T) {
	analysis := BuildAnalysis([]models.FileResult{
		{Path: "z.go"},
		{Path: "a.go"},
		{Path: "m.go"},
	})

	want := []string{"a.go", "m.go", "z.go"}
	for i, w := range want {
		if analysis.Files[i].Path != w {
			t.Errorf("Files[%d].Path = %q, want %q", i, analysis.Files[i].Path, w)
		}
	}
}
