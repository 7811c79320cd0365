package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/augurtools/augur/pkg/config"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new augur configuration file",
	Long: `Creates a new augur.toml configuration file in the current directory
with sensible defaults. Use --output to specify a different location.

Examples:
  augur init                      # Creates augur.toml in current directory
  augur init -o .augur/augur.toml # Creates config in .augur directory
  augur init --force              # Overwrite existing config file`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("output", "o", "augur.toml", "Output file path")
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("config file %q already exists (use --force to overwrite)", outputPath)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	content, err := generateDefaultConfig()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	color.Green("Created %s", outputPath)
	fmt.Println("Edit this file to customize analysis settings.")
	return nil
}

func generateDefaultConfig() (string, error) {
	cfg := config.DefaultConfig()

	content, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to TOML: %w", err)
	}

	var buf strings.Builder
	buf.WriteString("# Augur CLI Configuration\n")
	buf.WriteString("# Documentation: https://github.com/augurtools/augur\n\n")
	buf.Write(content)

	return buf.String(), nil
}
