package main

import (
	"fmt"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/internal/progress"
	"github.com/augurtools/augur/internal/service/analysis"
	scannerSvc "github.com/augurtools/augur/internal/service/scanner"
	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:     "suggest [path...]",
	Aliases: []string{"s"},
	Short:   "Suggest optimizations for inefficient code patterns",
	RunE:    runSuggest,
}

func init() {
	suggestCmd.Flags().StringP("format", "f", "", "Output format: text, json, markdown, toon")
	suggestCmd.Flags().StringP("output", "o", "", "Write output to file")
	suggestCmd.Flags().Bool("no-cache", false, "Disable result caching")
	suggestCmd.Flags().String("severity", "", "Only show suggestions at or above this severity: low, medium, high")
	suggestCmd.Flags().Bool("examples", false, "Include example code in text output")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := getFormat(cmd)
	if format == "" {
		format = cfg.Output.Format
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	severity, _ := cmd.Flags().GetString("severity")
	examples, _ := cmd.Flags().GetBool("examples")

	scanSvc := scannerSvc.New(scannerSvc.WithConfig(cfg))
	scanResult, err := scanSvc.ScanPaths(getPaths(args))
	if err != nil {
		return err
	}

	if len(scanResult.Files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	bar := progress.NewTracker("Collecting suggestions...", len(scanResult.Files))
	tracker := analyzer.NewTracker(func(current, total int, path string) {
		bar.Tick()
	})
	tracker.SetTotal(len(scanResult.Files))

	svc := analysis.New(analysis.WithConfig(cfg))
	ctx := analyzer.WithTracker(cmd.Context(), tracker)
	result, err := svc.AnalyzeFiles(ctx, scanResult.Files, analysis.EstimateOptions{NoCache: noCache})
	bar.FinishSuccess()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	minWeight := models.SeverityLow.Weight()
	switch severity {
	case "medium":
		minWeight = models.SeverityMedium.Weight()
	case "high":
		minWeight = models.SeverityHigh.Weight()
	}

	type fileSuggestions struct {
		Path        string              `json:"path"`
		Suggestions []models.Suggestion `json:"suggestions"`
	}

	var report []fileSuggestions
	total := 0
	for _, f := range result.Files {
		var kept []models.Suggestion
		for _, s := range f.Result.Suggestions {
			if s.Priority.Weight() >= minWeight {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			report = append(report, fileSuggestions{Path: f.Path, Suggestions: kept})
			total += len(kept)
		}
	}

	formatter, err := output.NewFormatter(output.ParseFormat(format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() != output.FormatText {
		return formatter.Output(report)
	}

	if total == 0 {
		formatter.Success("No suggestions: nothing obviously inefficient found")
		return nil
	}

	w := formatter.Writer()
	for _, fs := range report {
		fmt.Fprintf(w, "%s\n", fs.Path)
		for _, s := range fs.Suggestions {
			prio := string(s.Priority)
			if formatter.Colored() {
				prio = output.SeverityColor(prio, prio)
			}
			fmt.Fprintf(w, "  %4d  [%s] %s\n", s.Line, prio, s.Title)
			fmt.Fprintf(w, "        %s\n", s.Description)
			if examples && s.Example != "" {
				fmt.Fprintln(w)
				for _, line := range splitLines(s.Example) {
					fmt.Fprintf(w, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d suggestions in %d files\n", total, len(report))

	return nil
}
