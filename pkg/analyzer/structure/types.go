package structure

import "github.com/augurtools/augur/pkg/models"

// Result is the structural detector's output for one input.
type Result struct {
	Lines       []models.LineRecord       `json:"lines"`
	Patterns    []models.Pattern          `json:"patterns"`
	Suggestions []models.Suggestion       `json:"suggestions"`
	Educational []models.EducationalEntry `json:"educational"`
	Overall     models.Overall            `json:"overall"`
}

// Detector classifies lines and finds structural complexity patterns.
// It is stateless and safe for concurrent use.
type Detector struct{}

// Option is a functional option for configuring Detector.
type Option func(*Detector)

// New creates a structural detector.
func New(opts ...Option) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
