package main

import (
	"fmt"
	"strings"

	"github.com/augurtools/augur/pkg/config"
	"github.com/spf13/cobra"
)

// getPaths returns paths from args, defaulting to ["."]
func getPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

// getFormat returns the format flag value from the command.
func getFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}

// getOutputFile returns the output file path from the command.
func getOutputFile(cmd *cobra.Command) string {
	outputFile, _ := cmd.Flags().GetString("output")
	return outputFile
}

// loadConfig loads configuration, honoring the --config persistent flag.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %q: %w", cfgFile, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}

// splitLines splits s on newlines, dropping a trailing empty line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
