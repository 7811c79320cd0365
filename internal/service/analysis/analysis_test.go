package analysis

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/augurtools/augur/internal/cache"
	"github.com/augurtools/augur/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedGo = `package main

func pairs(items []int) {
	for i := 0; i < len(items); i++ {
		for j := 0; j < len(items); j++ {
			process(items[i], items[j])
		}
	}
}
`

const flatGo = `package main

func sum(items []int) int {
	total := 0
	for _, v := range items {
		total += v
	}
	return total
}
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	c, err := cache.New(filepath.Join(t.TempDir(), "cache"), 1, true)
	require.NoError(t, err)
	return New(WithCache(c))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	nested := writeFile(t, dir, "nested.go", nestedGo)
	flat := writeFile(t, dir, "flat.go", flatGo)

	svc := newTestService(t)
	analysis, err := svc.AnalyzeFiles(context.Background(), []string{nested, flat}, EstimateOptions{})
	require.NoError(t, err)

	require.Len(t, analysis.Files, 2)
	// Sorted by path: flat.go before nested.go
	assert.Equal(t, flat, analysis.Files[0].Path)
	assert.Equal(t, "O(n^2)", analysis.Files[1].Result.Overall.Time)
	assert.Equal(t, "O(n^2)", analysis.Summary.WorstTime)
}

func TestAnalyzeFilesCachesResults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nested.go", nestedGo)

	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.AnalyzeFiles(ctx, []string{path}, EstimateOptions{})
	require.NoError(t, err)

	// Second run hits the cache; results must be identical.
	second, err := svc.AnalyzeFiles(ctx, []string{path}, EstimateOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Files[0].Result.Overall, second.Files[0].Result.Overall)
	assert.Len(t, second.Files[0].Result.Suggestions, len(first.Files[0].Result.Suggestions))
}

func TestAnalyzeFilesCacheInvalidatedOnEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "code.go", nestedGo)

	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.AnalyzeFiles(ctx, []string{path}, EstimateOptions{})
	require.NoError(t, err)
	require.Equal(t, "O(n^2)", first.Files[0].Result.Overall.Time)

	writeFile(t, dir, "code.go", flatGo)

	second, err := svc.AnalyzeFiles(ctx, []string{path}, EstimateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "O(n)", second.Files[0].Result.Overall.Time)
}

func TestAnalyzeFilesMinScore(t *testing.T) {
	dir := t.TempDir()
	nested := writeFile(t, dir, "nested.go", nestedGo)
	flat := writeFile(t, dir, "flat.go", flatGo)

	svc := newTestService(t)
	analysis, err := svc.AnalyzeFiles(context.Background(), []string{nested, flat},
		EstimateOptions{MinScore: 80})
	require.NoError(t, err)

	// Nested file scores 60 and is filtered out.
	require.Len(t, analysis.Files, 1)
	assert.Equal(t, flat, analysis.Files[0].Path)
}

func TestAnalyzeFilesMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nested.go", nestedGo)

	svc := newTestService(t)
	analysis, err := svc.AnalyzeFiles(context.Background(), []string{path},
		EstimateOptions{MaxFileSize: 16})
	require.NoError(t, err)

	// Oversized files are skipped, not fatal.
	assert.Empty(t, analysis.Files)
}

func TestAnalyzeSnippet(t *testing.T) {
	svc := newTestService(t)

	res := svc.AnalyzeSnippet(nestedGo, "go")
	assert.Equal(t, "O(n^2)", res.Overall.Time)
	assert.Equal(t, "go", res.Language)
}

func TestAnalyzeSnippetDetectsLanguage(t *testing.T) {
	svc := newTestService(t)

	code := "def add(a, b):\n    print(a + b)\n"
	res := svc.AnalyzeSnippet(code, "")
	assert.Equal(t, "python", res.Language)
}

func TestAnalyzeFilesTogglesDisabled(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nested.go", nestedGo)

	cfg := config.DefaultConfig()
	cfg.Analysis.Structure = false
	cfg.Analysis.Suggestions = false
	cfg.Analysis.Education = false
	c, err := cache.New(filepath.Join(dir, "cache"), 1, true)
	require.NoError(t, err)

	svc := New(WithConfig(cfg), WithCache(c))
	analysis, err := svc.AnalyzeFiles(context.Background(), []string{path}, EstimateOptions{})
	require.NoError(t, err)
	require.Len(t, analysis.Files, 1)

	res := analysis.Files[0].Result
	assert.Empty(t, res.Patterns)
	assert.Empty(t, res.Suggestions)
	assert.Empty(t, res.Educational)
	// Line records and scoring are unaffected by the toggles.
	assert.NotEmpty(t, res.Lines)
	assert.Equal(t, "O(n^2)", res.Overall.Time)
	assert.Equal(t, 60, res.Overall.Score)
}

func TestAnalyzeFilesTogglesApplyToCachedResults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nested.go", nestedGo)
	cacheDir := filepath.Join(dir, "cache")

	c, err := cache.New(cacheDir, 1, true)
	require.NoError(t, err)
	full, err := New(WithCache(c)).AnalyzeFiles(context.Background(), []string{path}, EstimateOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, full.Files[0].Result.Suggestions)

	// A second service over the same cache with suggestions disabled must
	// trim the cached entry on the way out.
	cfg := config.DefaultConfig()
	cfg.Analysis.Suggestions = false
	c2, err := cache.New(cacheDir, 1, true)
	require.NoError(t, err)

	trimmed, err := New(WithConfig(cfg), WithCache(c2)).AnalyzeFiles(context.Background(), []string{path}, EstimateOptions{})
	require.NoError(t, err)
	assert.Empty(t, trimmed.Files[0].Result.Suggestions)
	assert.NotEmpty(t, trimmed.Files[0].Result.Patterns)
	assert.Equal(t, full.Files[0].Result.Overall, trimmed.Files[0].Result.Overall)
}

func TestAnalyzeSnippetTogglesDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.Education = false
	c, err := cache.New("", 0, false)
	require.NoError(t, err)

	svc := New(WithConfig(cfg), WithCache(c))
	res := svc.AnalyzeSnippet(nestedGo, "go")
	assert.Empty(t, res.Educational)
	assert.NotEmpty(t, res.Suggestions)
	assert.NotEmpty(t, res.Patterns)
}

func TestAnalyzeFilesNoCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nested.go", nestedGo)

	cfg := config.DefaultConfig()
	cfg.Cache.Enabled = false
	c, err := cache.New("", 0, false)
	require.NoError(t, err)

	svc := New(WithConfig(cfg), WithCache(c))
	analysis, err := svc.AnalyzeFiles(context.Background(), []string{path},
		EstimateOptions{NoCache: true})
	require.NoError(t, err)
	require.Len(t, analysis.Files, 1)
}
