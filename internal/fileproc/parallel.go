// Package fileproc provides concurrent file processing utilities.
package fileproc

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/sourcegraph/conc/pool"
)

// ProcessingError represents an error that occurred while processing a file.
type ProcessingError struct {
	Path string
	Err  error
}

func (e ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// ProcessingErrors collects multiple file processing errors.
type ProcessingErrors struct {
	Errors []ProcessingError
	mu     sync.Mutex
}

// Add appends an error to the collection (thread-safe).
func (e *ProcessingErrors) Add(path string, err error) {
	e.mu.Lock()
	e.Errors = append(e.Errors, ProcessingError{Path: path, Err: err})
	e.mu.Unlock()
}

// HasErrors returns true if any errors were collected.
func (e *ProcessingErrors) HasErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Errors) > 0
}

// Error implements the error interface.
func (e *ProcessingErrors) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d files failed to process (first: %v)", len(e.Errors), e.Errors[0])
}

// DefaultWorkerMultiplier is the multiplier applied to NumCPU for worker
// count. 2x works well for the mixed I/O and CPU profile of read-then-scan
// workloads.
const DefaultWorkerMultiplier = 2

// MapFiles processes files in parallel. Results are collected in completion
// order; failed files are recorded in the returned ProcessingErrors and
// skipped. A progress tracker attached via analyzer.WithTracker is ticked
// once per file, success or not.
func MapFiles[T any](ctx context.Context, files []string, fn func(path string) (T, error)) ([]T, *ProcessingErrors) {
	return MapFilesN(ctx, files, 0, fn)
}

// MapFilesN processes files with a configurable worker count. If maxWorkers
// is <= 0, it defaults to 2x NumCPU.
func MapFilesN[T any](ctx context.Context, files []string, maxWorkers int, fn func(path string) (T, error)) ([]T, *ProcessingErrors) {
	procErrs := &ProcessingErrors{}
	if len(files) == 0 {
		return nil, procErrs
	}

	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU() * DefaultWorkerMultiplier
	}

	tracker := analyzer.TrackerFromContext(ctx)
	results := make([]T, 0, len(files))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxWorkers)
	for _, path := range files {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}

			result, err := fn(path)
			if tracker != nil {
				tracker.Tick(path)
			}
			if err != nil {
				procErrs.Add(path, err)
				return
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
	}
	p.Wait()

	return results, procErrs
}
