package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for augur.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis"`

	// Thresholds for scoring
	Thresholds ThresholdConfig `koanf:"thresholds"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude"`

	// Cache settings
	Cache CacheConfig `koanf:"cache"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// AnalysisConfig selects which result sections are reported and bounds
// input size.
type AnalysisConfig struct {
	Structure   bool `koanf:"structure"`
	Suggestions bool `koanf:"suggestions"`
	Education   bool `koanf:"education"`
	MaxFileSize int  `koanf:"max_file_size"` // bytes, 0 disables the limit
}

// ThresholdConfig defines score thresholds.
type ThresholdConfig struct {
	// MinScore filters per-file results below this score out of reports.
	MinScore int `koanf:"min_score"`
	// FailUnder makes analyze exit non-zero when any file scores below it.
	FailUnder int `koanf:"fail_under"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns   []string `koanf:"patterns"`
	Extensions []string `koanf:"extensions"`
	Dirs       []string `koanf:"dirs"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
	TTL     int    `koanf:"ttl"` // TTL in hours
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Structure:   true,
			Suggestions: true,
			Education:   true,
			MaxFileSize: 1 << 20,
		},
		Thresholds: ThresholdConfig{
			MinScore:  0,
			FailUnder: 0,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*_test.go",
				"*.test.ts",
				"*.test.js",
				"*.min.js",
				"*.min.css",
			},
			Extensions: []string{
				".lock",
				".sum",
			},
			Dirs: []string{
				"vendor",
				"node_modules",
				".git",
				".augur",
				"dist",
				"build",
				"target",
				"__pycache__",
			},
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".augur/cache",
			TTL:     24,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile returns the path of the first config file present in the
// standard search locations, or "" when none exists.
func FindConfigFile() string {
	configNames := []string{
		"augur.toml",
		"augur.yaml",
		"augur.yml",
		"augur.json",
		".augur.toml",
		".augur.yaml",
		".augur.yml",
		".augur.json",
	}

	searchDirs := []string{".", ".augur"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	if path := FindConfigFile(); path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return DefaultConfig()
}

// ShouldExclude checks if a path should be excluded from analysis.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	ext := filepath.Ext(path)
	for _, excludeExt := range c.Exclude.Extensions {
		if ext == excludeExt {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
