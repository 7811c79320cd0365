package fileproc

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/augurtools/augur/pkg/analyzer"
)

func TestMapFiles(t *testing.T) {
	files := []string{"a", "b", "c"}

	results, errs := MapFiles(context.Background(), files, func(path string) (string, error) {
		return strings.ToUpper(path), nil
	})

	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	sort.Strings(results)
	want := []string{"A", "B", "C"}
	if len(results) != len(want) {
		t.Fatalf("results = %v, want %v", results, want)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, results[i], want[i])
		}
	}
}

func TestMapFilesEmpty(t *testing.T) {
	results, errs := MapFiles(context.Background(), nil, func(path string) (int, error) {
		return 0, nil
	})
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
	if errs.HasErrors() {
		t.Errorf("errors = %v, want none", errs)
	}
}

func TestMapFilesSkipsFailures(t *testing.T) {
	files := []string{"ok1", "bad", "ok2"}

	results, errs := MapFiles(context.Background(), files, func(path string) (string, error) {
		if path == "bad" {
			return "", errors.New("boom")
		}
		return path, nil
	})

	if len(results) != 2 {
		t.Errorf("results = %v, want 2 entries", results)
	}
	if !errs.HasErrors() {
		t.Fatal("expected a recorded error")
	}
	if len(errs.Errors) != 1 || errs.Errors[0].Path != "bad" {
		t.Errorf("errors = %v, want one error for %q", errs.Errors, "bad")
	}
}

func TestMapFilesTicksTracker(t *testing.T) {
	tracker := analyzer.NewTracker(nil)
	tracker.SetTotal(3)
	ctx := analyzer.WithTracker(context.Background(), tracker)

	MapFiles(ctx, []string{"a", "bad", "c"}, func(path string) (int, error) {
		if path == "bad" {
			return 0, errors.New("boom")
		}
		return 1, nil
	})

	// Failed files tick too.
	if tracker.Current() != 3 {
		t.Errorf("tracker.Current() = %d, want 3", tracker.Current())
	}
}

func TestMapFilesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, _ := MapFiles(ctx, []string{"a", "b"}, func(path string) (int, error) {
		t.Error("fn called after cancellation")
		return 0, nil
	})
	if len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
}

func TestMapFilesNWorkerOverride(t *testing.T) {
	results, errs := MapFilesN(context.Background(), []string{"a", "b", "c", "d"}, 1, func(path string) (string, error) {
		return path, nil
	})
	if errs.HasErrors() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(results) != 4 {
		t.Errorf("results = %d entries, want 4", len(results))
	}
}

func TestProcessingErrorsError(t *testing.T) {
	errs := &ProcessingErrors{}
	if errs.Error() != "no errors" {
		t.Errorf("empty Error() = %q", errs.Error())
	}

	errs.Add("a.go", errors.New("boom"))
	if got := errs.Error(); !strings.Contains(got, "a.go") || !strings.Contains(got, "boom") {
		t.Errorf("single Error() = %q", got)
	}

	errs.Add("b.go", errors.New("bang"))
	if got := errs.Error(); !strings.Contains(got, "2 files failed") {
		t.Errorf("multi Error() = %q", got)
	}
}
