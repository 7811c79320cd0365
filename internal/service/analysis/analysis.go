// Package analysis orchestrates complexity estimation over scanned files,
// layering result caching on top of the batch analyzer.
package analysis

import (
	"context"
	"encoding/json"
	"os"

	"github.com/augurtools/augur/internal/cache"
	"github.com/augurtools/augur/internal/fileproc"
	"github.com/augurtools/augur/pkg/analyzer/estimate"
	"github.com/augurtools/augur/pkg/config"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
)

// Service orchestrates analysis operations.
type Service struct {
	config *config.Config
	cache  *cache.Cache
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithCache sets the result cache (for testing).
func WithCache(c *cache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// New creates a new analysis service.
func New(opts ...Option) *Service {
	s := &Service{
		config: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		c, err := cache.New(s.config.Cache.Dir, s.config.Cache.TTL, s.config.Cache.Enabled)
		if err != nil {
			c, _ = cache.New("", 0, false)
		}
		s.cache = c
	}
	return s
}

// EstimateOptions configures a batch estimation run.
type EstimateOptions struct {
	// MaxFileSize overrides the configured limit when positive.
	MaxFileSize int64
	// MinScore filters results scoring below it out of the report.
	MinScore int
	// NoCache bypasses the result cache.
	NoCache bool
}

// AnalyzeFiles runs complexity estimation on the given files. Per-file
// results are cached keyed on content hash, so unchanged files skip the
// engine entirely. Progress is tracked via context using analyzer.WithTracker.
func (s *Service) AnalyzeFiles(ctx context.Context, files []string, opts EstimateOptions) (*models.Analysis, error) {
	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = int64(s.config.Analysis.MaxFileSize)
	}

	results, _ := fileproc.MapFiles(ctx, files, func(path string) (models.FileResult, error) {
		return s.analyzeFile(path, maxSize, opts.NoCache)
	})

	analysis := estimate.BuildAnalysis(results)

	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = s.config.Thresholds.MinScore
	}
	if minScore > 0 {
		analysis = filterByScore(analysis, minScore)
	}

	return analysis, nil
}

// analyzeFile runs the engine on one file, consulting the cache first.
func (s *Service) analyzeFile(path string, maxSize int64, noCache bool) (models.FileResult, error) {
	if maxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return models.FileResult{}, err
		}
		if info.Size() > maxSize {
			return models.FileResult{}, &SizeError{Path: path, Size: info.Size(), Limit: maxSize}
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.FileResult{}, err
	}

	hash := cache.HashBytes(data)
	if !noCache {
		if raw, ok := s.cache.GetWithHash(path, hash); ok {
			var cached models.FileResult
			if err := json.Unmarshal(raw, &cached); err == nil {
				cached.Result = s.applyToggles(cached.Result)
				return cached, nil
			}
		}
	}

	code := string(data)
	res := estimate.Analyze(code, lang.Detect(code, path))
	result := models.FileResult{Path: path, Language: res.Language, Result: *res}

	if !noCache {
		if raw, err := json.Marshal(result); err == nil {
			s.cache.SetWithHash(path, hash, raw)
		}
	}

	result.Result = s.applyToggles(result.Result)
	return result, nil
}

// applyToggles strips result sections disabled in the analysis configuration.
// The cache always stores the full result, so toggling a section back on does
// not invalidate cached entries.
func (s *Service) applyToggles(res models.AnalysisResult) models.AnalysisResult {
	if !s.config.Analysis.Structure {
		res.Patterns = nil
	}
	if !s.config.Analysis.Suggestions {
		res.Suggestions = nil
	}
	if !s.config.Analysis.Education {
		res.Educational = nil
	}
	return res
}

// AnalyzeSource runs estimation against files provided by a content source,
// such as a git revision. Results are not cached.
func (s *Service) AnalyzeSource(ctx context.Context, files []string, src estimate.ContentSource) (*models.Analysis, error) {
	a := estimate.New()
	defer a.Close()
	return a.AnalyzeFromSource(ctx, files, src)
}

// AnalyzeSnippet runs the engine directly on a code snippet. The language is
// detected from content when tag is empty.
func (s *Service) AnalyzeSnippet(code, tag string) *models.AnalysisResult {
	if tag == "" {
		tag = lang.Detect(code, "")
	}
	res := s.applyToggles(*estimate.Analyze(code, tag))
	return &res
}

// filterByScore drops file results scoring below minScore and recomputes the
// summary over what remains.
func filterByScore(analysis *models.Analysis, minScore int) *models.Analysis {
	kept := make([]models.FileResult, 0, len(analysis.Files))
	for _, f := range analysis.Files {
		if f.Result.Overall.Score >= minScore {
			kept = append(kept, f)
		}
	}
	return estimate.BuildAnalysis(kept)
}

// SizeError indicates a file exceeded the size limit.
type SizeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *SizeError) Error() string {
	return "file exceeds size limit: " + e.Path
}
