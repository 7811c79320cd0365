package estimate

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/augurtools/augur/internal/fileproc"
	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

// Ensure Analyzer implements analyzer.FileAnalyzer.
var _ analyzer.FileAnalyzer[*models.Analysis] = (*Analyzer)(nil)

// Analyzer estimates complexity for collections of files.
type Analyzer struct {
	maxFileSize int64
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithMaxFileSize sets the maximum file size to analyze (0 = no limit).
func WithMaxFileSize(maxSize int64) Option {
	return func(a *Analyzer) {
		a.maxFileSize = maxSize
	}
}

// New creates a batch analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ContentSource provides file content from somewhere other than the working
// tree, such as a git revision.
type ContentSource interface {
	Read(path string) ([]byte, error)
}

// Analyze processes files in parallel and aggregates per-file results.
// Progress is tracked via context using analyzer.WithTracker.
func (a *Analyzer) Analyze(ctx context.Context, files []string) (*models.Analysis, error) {
	results, _ := fileproc.MapFiles(ctx, files, func(path string) (models.FileResult, error) {
		if a.maxFileSize > 0 {
			info, err := os.Stat(path)
			if err != nil {
				return models.FileResult{}, err
			}
			if info.Size() > a.maxFileSize {
				return models.FileResult{}, fmt.Errorf("file exceeds size limit: %s", path)
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return models.FileResult{}, err
		}
		return analyzeContent(path, data), nil
	})

	return BuildAnalysis(results), nil
}

// AnalyzeFromSource processes files from a ContentSource, enabling analysis
// of historical revisions without a filesystem checkout.
func (a *Analyzer) AnalyzeFromSource(ctx context.Context, files []string, src ContentSource) (*models.Analysis, error) {
	results, _ := fileproc.MapFiles(ctx, files, func(path string) (models.FileResult, error) {
		data, err := src.Read(path)
		if err != nil {
			return models.FileResult{}, err
		}
		return analyzeContent(path, data), nil
	})

	return BuildAnalysis(results), nil
}

// Close releases analyzer resources. The engine holds none; the method
// satisfies analyzer.FileAnalyzer.
func (a *Analyzer) Close() {}

func analyzeContent(path string, data []byte) models.FileResult {
	code := string(data)
	res := Analyze(code, lang.Detect(code, path))
	return models.FileResult{Path: path, Language: res.Language, Result: *res}
}

// BuildAnalysis assembles the aggregate. Results arrive in pool completion
// order, so they are sorted by path for deterministic output.
func BuildAnalysis(results []models.FileResult) *models.Analysis {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	analysis := &models.Analysis{Files: results}
	analysis.Summary = summarize(results)
	return analysis
}
