package mcpserver

import (
	"context"

	"github.com/augurtools/augur/internal/service/analysis"
	scannerSvc "github.com/augurtools/augur/internal/service/scanner"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"
)

// AnalyzeInput is the base input for analyze tools.
type AnalyzeInput struct {
	Paths []string `json:"paths,omitempty" jsonschema:"Paths to analyze. Defaults to current directory if empty."`
	Code  string   `json:"code,omitempty" jsonschema:"Analyze this code snippet directly instead of reading files."`
	Lang  string   `json:"lang,omitempty" jsonschema:"Language hint for snippets (go, python, javascript, ...). Detected from content when empty."`
}

// ComplexityInput adds analysis-specific options.
type ComplexityInput struct {
	AnalyzeInput
	MinScore int `json:"min_score,omitempty" jsonschema:"Only report files scoring below this 0-100 efficiency score."`
}

// SuggestInput adds suggestion-specific options.
type SuggestInput struct {
	AnalyzeInput
	Severity string `json:"severity,omitempty" jsonschema:"Only include suggestions at or above this severity: low, medium, or high."`
}

// ListLanguagesInput takes no arguments.
type ListLanguagesInput struct{}

// Helper functions

func getPaths(input AnalyzeInput) []string {
	if len(input.Paths) == 0 {
		return []string{"."}
	}
	return input.Paths
}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

// analyzeFromInput runs the engine on a snippet or on scanned paths.
func analyzeFromInput(ctx context.Context, input AnalyzeInput) (*models.Analysis, error) {
	svc := analysis.New()

	if input.Code != "" {
		res := svc.AnalyzeSnippet(input.Code, input.Lang)
		return &models.Analysis{
			Files: []models.FileResult{
				{Path: "snippet", Language: res.Language, Result: *res},
			},
		}, nil
	}

	scanner := scannerSvc.New()
	scanResult, err := scanner.ScanPaths(getPaths(input))
	if err != nil {
		return nil, err
	}

	return svc.AnalyzeFiles(ctx, scanResult.Files, analysis.EstimateOptions{})
}

// Tool handlers

func handleAnalyzeComplexity(ctx context.Context, req *mcp.CallToolRequest, input ComplexityInput) (*mcp.CallToolResult, any, error) {
	result, err := analyzeFromInput(ctx, input.AnalyzeInput)
	if err != nil {
		return toolError(err.Error())
	}
	if len(result.Files) == 0 {
		return toolError("no source files found")
	}

	if input.MinScore > 0 {
		var kept []models.FileResult
		for _, f := range result.Files {
			if f.Result.Overall.Score < input.MinScore {
				kept = append(kept, f)
			}
		}
		result.Files = kept
	}

	out := struct {
		Files   []fileOverall  `json:"files" toon:"files"`
		Summary models.Summary `json:"summary" toon:"summary"`
	}{fileOveralls(result.Files), result.Summary}

	return toolResult(out)
}

func handleSuggestOptimizations(ctx context.Context, req *mcp.CallToolRequest, input SuggestInput) (*mcp.CallToolResult, any, error) {
	result, err := analyzeFromInput(ctx, input.AnalyzeInput)
	if err != nil {
		return toolError(err.Error())
	}
	if len(result.Files) == 0 {
		return toolError("no source files found")
	}

	minWeight := severityWeight(input.Severity)

	type fileSuggestions struct {
		Path        string              `json:"path" toon:"path"`
		Suggestions []models.Suggestion `json:"suggestions" toon:"suggestions"`
	}

	var out []fileSuggestions
	for _, f := range result.Files {
		var kept []models.Suggestion
		for _, s := range f.Result.Suggestions {
			if s.Priority.Weight() >= minWeight {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			out = append(out, fileSuggestions{Path: f.Path, Suggestions: kept})
		}
	}

	return toolResult(out)
}

func handleListLanguages(ctx context.Context, req *mcp.CallToolRequest, input ListLanguagesInput) (*mcp.CallToolResult, any, error) {
	type languageInfo struct {
		ID         string   `json:"id" toon:"id"`
		Name       string   `json:"name" toon:"name"`
		Extensions []string `json:"extensions" toon:"extensions"`
	}

	out := make([]languageInfo, 0, len(lang.Catalog))
	for _, l := range lang.Catalog {
		out = append(out, languageInfo{ID: l.ID, Name: l.Name, Extensions: l.Extensions})
	}

	return toolResult(out)
}

// fileOverall is the per-file slice of an analysis the complexity tool emits.
type fileOverall struct {
	Path     string           `json:"path" toon:"path"`
	Language string           `json:"language" toon:"language"`
	Overall  models.Overall   `json:"overall" toon:"overall"`
	Patterns []models.Pattern `json:"patterns" toon:"patterns"`
}

func fileOveralls(files []models.FileResult) []fileOverall {
	out := make([]fileOverall, len(files))
	for i, f := range files {
		out[i] = fileOverall{
			Path:     f.Path,
			Language: f.Language,
			Overall:  f.Result.Overall,
			Patterns: f.Result.Patterns,
		}
	}
	return out
}

func severityWeight(s string) int {
	switch s {
	case "high":
		return models.SeverityHigh.Weight()
	case "medium":
		return models.SeverityMedium.Weight()
	default:
		return models.SeverityLow.Weight()
	}
}
