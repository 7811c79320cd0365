package main

import (
	"fmt"
	"strings"

	"github.com/augurtools/augur/internal/output"
	"github.com/augurtools/augur/pkg/lang"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their file extensions",
	RunE:  runLanguages,
}

func init() {
	languagesCmd.Flags().StringP("format", "f", "text", "Output format: text, json, markdown, toon, yaml")
	languagesCmd.Flags().StringP("output", "o", "", "Write output to file")

	rootCmd.AddCommand(languagesCmd)
}

type languageInfo struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Style      string   `json:"style" yaml:"style"`
}

func runLanguages(cmd *cobra.Command, args []string) error {
	infos := make([]languageInfo, 0, len(lang.Catalog))
	for _, l := range lang.Catalog {
		infos = append(infos, languageInfo{
			ID:         l.ID,
			Name:       l.Name,
			Extensions: l.Extensions,
			Style:      string(l.Style),
		})
	}

	format := getFormat(cmd)
	if format == "yaml" {
		data, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	formatter, err := output.NewFormatter(output.ParseFormat(format), getOutputFile(cmd), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, info := range infos {
		rows = append(rows, []string{
			info.ID,
			info.Name,
			strings.Join(info.Extensions, " "),
			info.Style,
		})
	}

	table := output.NewTable(
		"Supported Languages",
		[]string{"ID", "Name", "Extensions", "Block Style"},
		rows,
		nil,
		infos,
	)

	return formatter.Output(table)
}
