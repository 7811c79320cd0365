// Package scanner discovers source files eligible for analysis.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/augurtools/augur/pkg/config"
	"github.com/augurtools/augur/pkg/lang"
)

// ScanResult contains the result of a file scan.
type ScanResult struct {
	Files          []string
	LanguageGroups map[string][]string
	Skipped        int
}

// Service provides file scanning functionality.
type Service struct {
	config *config.Config
}

// Option configures a Service.
type Option func(*Service)

// WithConfig sets the configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// New creates a new scanner service.
func New(opts ...Option) *Service {
	s := &Service{
		config: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanPaths scans the given paths (files or directories) and returns all
// found source files grouped by language.
func (s *Service) ScanPaths(paths []string) (*ScanResult, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &PathError{Path: path, Err: err}
		}

		if !info.IsDir() {
			if s.eligible(filepath.Base(path)) {
				files = append(files, path)
			}
			continue
		}

		found, err := s.scanDir(path)
		if err != nil {
			return nil, &ScanError{Path: path, Err: err}
		}
		files = append(files, found...)
	}

	result := &ScanResult{
		Files:          files,
		LanguageGroups: s.groupByLanguage(files),
	}

	if maxSize := int64(s.config.Analysis.MaxFileSize); maxSize > 0 {
		result.Files, result.Skipped = filterBySize(result.Files, maxSize)
		result.LanguageGroups = s.groupByLanguage(result.Files)
	}

	return result, nil
}

// scanDir recursively scans a directory for source files. Uses
// filepath.WalkDir to avoid per-entry stat calls.
func (s *Service) scanDir(root string) ([]string, error) {
	files := make([]string, 0, 256)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if s.excludedDir(d.Name()) {
				return filepath.SkipDir
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.config.ShouldExclude(relPath) {
			return nil
		}
		if s.eligible(d.Name()) {
			files = append(files, path)
		}

		return nil
	})

	return files, walkErr
}

// excludedDir reports whether a directory name is excluded by config.
func (s *Service) excludedDir(name string) bool {
	for _, dir := range s.config.Exclude.Dirs {
		if name == dir {
			return true
		}
	}
	return false
}

// eligible reports whether the file name maps to a known language.
func (s *Service) eligible(name string) bool {
	_, ok := lang.ByExtension(filepath.Ext(name))
	return ok
}

// groupByLanguage groups files by their detected language ID.
func (s *Service) groupByLanguage(files []string) map[string][]string {
	groups := make(map[string][]string)
	for _, f := range files {
		if l, ok := lang.ByExtension(filepath.Ext(f)); ok {
			groups[l.ID] = append(groups[l.ID], f)
		}
	}
	return groups
}

// filterBySize drops files that exceed maxSize bytes. Returns the filtered
// list and the count of files that were skipped.
func filterBySize(files []string, maxSize int64) ([]string, int) {
	filtered := make([]string, 0, len(files))
	skipped := 0

	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			skipped++
			continue
		}
		if info.Size() > maxSize {
			skipped++
			continue
		}
		filtered = append(filtered, f)
	}

	return filtered, skipped
}

// PathError indicates an invalid path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "invalid path " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ScanError indicates a scanning failure.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return "failed to scan directory " + e.Path + ": " + e.Err.Error()
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
