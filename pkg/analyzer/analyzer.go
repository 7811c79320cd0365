// Package analyzer holds the pieces shared by all analyzers: the common
// file-analyzer interface, the progress tracker, and the bounded lookahead
// windows used by the text recognizers.
package analyzer

import "context"

// FileAnalyzer is the interface batch analyzers implement. The context can
// carry a progress tracker (see WithTracker) and supports cancellation.
type FileAnalyzer[T any] interface {
	Analyze(ctx context.Context, files []string) (T, error)

	// Close releases any resources held by the analyzer.
	Close()
}
