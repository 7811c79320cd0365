package main

import (
	"fmt"
	"io"
	"os"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/internal/service/analysis"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/augurtools/augur/pkg/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:     "explain [file]",
	Aliases: []string{"e"},
	Short:   "Explain the estimated complexity of a single file or stdin",
	Long: `Analyzes one file (or code piped on stdin) and prints the full
breakdown: per-line annotations, detected patterns, suggestions with
example rewrites, and short explanations of the concepts involved.

Examples:
  augur explain slow.py
  cat snippet.js | augur explain --lang javascript`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().StringP("format", "f", "", "Output format: text, json, markdown, toon")
	explainCmd.Flags().StringP("output", "o", "", "Write output to file")
	explainCmd.Flags().String("lang", "", "Language hint (go, python, javascript, ...)")

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := getFormat(cmd)
	if format == "" {
		format = cfg.Output.Format
	}
	tag, _ := cmd.Flags().GetString("lang")

	var code, name string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		code = string(data)
		name = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		code = string(data)
		name = "stdin"
	}

	if tag == "" {
		tag = lang.Detect(code, name)
	}

	svc := analysis.New(analysis.WithConfig(cfg))
	res := svc.AnalyzeSnippet(code, tag)

	formatter, err := output.NewFormatter(output.ParseFormat(format), getOutputFile(cmd), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() != output.FormatText {
		return formatter.Output(res)
	}

	return printExplanation(formatter, name, res)
}

func printExplanation(formatter *output.Formatter, name string, res *models.AnalysisResult) error {
	w := formatter.Writer()
	colored := formatter.Colored()

	if colored {
		color.New(color.Bold, color.FgCyan).Fprintf(w, "%s (%s)\n", name, res.Language)
	} else {
		fmt.Fprintf(w, "%s (%s)\n", name, res.Language)
	}
	fmt.Fprintf(w, "Estimated time: %s   Space: %s   Score: %d/100\n\n",
		res.Overall.Time, res.Overall.Space, res.Overall.Score)

	for _, l := range res.Lines {
		label := fmt.Sprintf("%-10s", l.Complexity)
		if colored {
			label = output.SeverityColor(string(l.Severity), label)
		}
		fmt.Fprintf(w, "  %4d  %s %s\n", l.Line, label, truncate(l.Text, 80))
	}

	if len(res.Patterns) > 0 {
		fmt.Fprintln(w)
		if colored {
			color.New(color.Bold).Fprintln(w, "Patterns")
		} else {
			fmt.Fprintln(w, "Patterns")
		}
		for _, p := range res.Patterns {
			fmt.Fprintf(w, "  lines %d-%d  %s  %s: %s\n",
				p.StartLine, p.EndLine, p.Complexity, p.Kind, p.Description)
		}
	}

	if len(res.Suggestions) > 0 {
		fmt.Fprintln(w)
		if colored {
			color.New(color.Bold).Fprintln(w, "Suggestions")
		} else {
			fmt.Fprintln(w, "Suggestions")
		}
		for _, s := range res.Suggestions {
			prio := string(s.Priority)
			if colored {
				prio = output.SeverityColor(prio, prio)
			}
			fmt.Fprintf(w, "  %4d  [%s] %s\n", s.Line, prio, s.Title)
			fmt.Fprintf(w, "        %s\n", s.Description)
			if s.Example != "" {
				fmt.Fprintln(w)
				for _, line := range splitLines(s.Example) {
					fmt.Fprintf(w, "        %s\n", line)
				}
				fmt.Fprintln(w)
			}
		}
	}

	if len(res.Educational) > 0 {
		fmt.Fprintln(w)
		if colored {
			color.New(color.Bold).Fprintln(w, "Concepts")
		} else {
			fmt.Fprintln(w, "Concepts")
		}
		for _, e := range res.Educational {
			fmt.Fprintf(w, "  %s: %s\n", e.Concept, e.Explanation)
		}
	}

	return nil
}
