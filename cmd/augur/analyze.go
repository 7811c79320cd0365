package main

import (
	"fmt"
	"path/filepath"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/internal/progress"
	"github.com/augurtools/augur/internal/service/analysis"
	scannerSvc "github.com/augurtools/augur/internal/service/scanner"
	"github.com/augurtools/augur/internal/vcs"
	"github.com/augurtools/augur/pkg/analyzer"
	"github.com/augurtools/augur/pkg/config"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze [path...]",
	Aliases: []string{"a"},
	Short:   "Estimate algorithmic complexity of source files",
	RunE:    runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", "", "Output format: text, json, markdown, toon")
	analyzeCmd.Flags().StringP("output", "o", "", "Write output to file")
	analyzeCmd.Flags().Bool("no-cache", false, "Disable result caching")
	analyzeCmd.Flags().String("ref", "", "Analyze files at a git ref (branch, tag, SHA) instead of the working tree")
	analyzeCmd.Flags().Int("min-score", 0, "Only report files scoring at or above this value")
	analyzeCmd.Flags().Int("fail-under", 0, "Exit non-zero when any file scores below this value")
	analyzeCmd.Flags().Bool("annotate", false, "Print per-line complexity annotations")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := getFormat(cmd)
	if format == "" {
		format = cfg.Output.Format
	}

	ref, _ := cmd.Flags().GetString("ref")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	minScore, _ := cmd.Flags().GetInt("min-score")
	failUnder, _ := cmd.Flags().GetInt("fail-under")
	annotate, _ := cmd.Flags().GetBool("annotate")

	if failUnder <= 0 {
		failUnder = cfg.Thresholds.FailUnder
	}

	paths := getPaths(args)
	svc := analysis.New(analysis.WithConfig(cfg))

	var result *models.Analysis
	if ref != "" {
		result, err = analyzeRef(cmd, svc, cfg.ShouldExclude, paths[0], ref)
	} else {
		result, err = analyzeWorkingTree(cmd, svc, cfg, paths, analysis.EstimateOptions{
			MinScore: minScore,
			NoCache:  noCache,
		})
	}
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	formatter, err := output.NewFormatter(output.ParseFormat(format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if err := renderAnalysis(formatter, result, annotate); err != nil {
		return err
	}

	if failUnder > 0 {
		for _, f := range result.Files {
			if f.Result.Overall.Score < failUnder {
				return fmt.Errorf("score %d for %s is below threshold %d",
					f.Result.Overall.Score, f.Path, failUnder)
			}
		}
	}

	return nil
}

// analyzeWorkingTree scans the filesystem and runs the estimator with a
// progress bar attached via context.
func analyzeWorkingTree(cmd *cobra.Command, svc *analysis.Service, cfg *config.Config, paths []string, opts analysis.EstimateOptions) (*models.Analysis, error) {
	scanSvc := scannerSvc.New(scannerSvc.WithConfig(cfg))
	scanResult, err := scanSvc.ScanPaths(paths)
	if err != nil {
		return nil, err
	}

	if len(scanResult.Files) == 0 {
		color.Yellow("No source files found")
		return nil, nil
	}
	if scanResult.Skipped > 0 && verbose {
		color.Yellow("Skipped %d files over the size limit", scanResult.Skipped)
	}

	bar := progress.NewTracker("Estimating complexity...", len(scanResult.Files))
	tracker := analyzer.NewTracker(func(current, total int, path string) {
		bar.Tick()
	})
	tracker.SetTotal(len(scanResult.Files))

	ctx := analyzer.WithTracker(cmd.Context(), tracker)
	result, err := svc.AnalyzeFiles(ctx, scanResult.Files, opts)
	bar.FinishSuccess()
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return result, nil
}

// analyzeRef reads a git revision's tree and estimates the files in it.
func analyzeRef(cmd *cobra.Command, svc *analysis.Service, excluded func(string) bool, path, ref string) (*models.Analysis, error) {
	tree, err := vcs.Open(path, ref)
	if err != nil {
		return nil, err
	}

	all, err := tree.Files()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, f := range all {
		if excluded(f) {
			continue
		}
		if _, ok := lang.ByExtension(filepath.Ext(f)); ok {
			files = append(files, f)
		}
	}

	if len(files) == 0 {
		color.Yellow("No source files found at %s", ref)
		return nil, nil
	}

	spinner := progress.NewSpinner(fmt.Sprintf("Estimating complexity at %s...", ref))
	result, err := svc.AnalyzeSource(cmd.Context(), files, tree)
	spinner.FinishSuccess()
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return result, nil
}

// renderAnalysis writes the analysis as a table, optionally followed by
// per-line annotations.
func renderAnalysis(formatter *output.Formatter, result *models.Analysis, annotate bool) error {
	var rows [][]string
	for _, f := range result.Files {
		score := fmt.Sprintf("%d", f.Result.Overall.Score)
		if formatter.Colored() {
			switch {
			case f.Result.Overall.Score < 60:
				score = color.RedString("%d", f.Result.Overall.Score)
			case f.Result.Overall.Score < 80:
				score = color.YellowString("%d", f.Result.Overall.Score)
			}
		}
		rows = append(rows, []string{
			f.Path,
			f.Language,
			f.Result.Overall.Time,
			score,
			fmt.Sprintf("%d", len(f.Result.Patterns)),
			fmt.Sprintf("%d", len(f.Result.Suggestions)),
		})
	}

	table := output.NewTable(
		"Complexity Estimate",
		[]string{"File", "Language", "Time", "Score", "Patterns", "Suggestions"},
		rows,
		[]string{
			fmt.Sprintf("Files: %d", result.Summary.TotalFiles),
			fmt.Sprintf("Lines: %d", result.Summary.TotalLines),
			fmt.Sprintf("Avg Score: %.1f", result.Summary.AvgScore),
			fmt.Sprintf("P50 Score: %d", result.Summary.P50Score),
			fmt.Sprintf("P90 Score: %d", result.Summary.P90Score),
			fmt.Sprintf("Worst Time: %s", result.Summary.WorstTime),
		},
		result,
	)

	if err := formatter.Output(table); err != nil {
		return err
	}

	if annotate && formatter.Format() == output.FormatText {
		for _, f := range result.Files {
			printAnnotations(formatter, f)
		}
	}

	return nil
}

// printAnnotations writes per-line complexity for lines that carry any.
func printAnnotations(formatter *output.Formatter, f models.FileResult) {
	w := formatter.Writer()
	fmt.Fprintf(w, "\n%s\n", f.Path)
	for _, l := range f.Result.Lines {
		if l.Complexity == "O(1)" && l.Severity == models.SeverityLow {
			continue
		}
		label := fmt.Sprintf("%-10s", l.Complexity)
		if formatter.Colored() {
			label = output.SeverityColor(string(l.Severity), label)
		}
		fmt.Fprintf(w, "  %4d  %s %s\n", l.Line, label, truncate(l.Text, 80))
	}
}
