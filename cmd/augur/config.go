package main

import (
	"fmt"

	"github.com/augurtools/augur/pkg/config"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validates an augur configuration file for syntax errors.

Examples:
  augur config validate                   # Validates default config locations
  augur config validate -c augur.toml     # Validates specific file`,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Shows the merged configuration from defaults and config file.

Examples:
  augur config show               # Show effective config
  augur config show -c augur.toml # Show config from specific file`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configSource resolves which config file applies: the --config flag, a file
// found in the standard locations, or none.
func configSource() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.FindConfigFile()
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	source := configSource()
	if source == "" {
		color.Yellow("No config file found. Default configuration is valid.")
		return nil
	}

	if _, err := config.Load(source); err != nil {
		color.Red("Configuration validation failed:")
		fmt.Printf("  - %s\n", err)
		return err
	}

	color.Green("Configuration valid: %s", source)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	source := configSource()

	var cfg *config.Config
	if source != "" {
		loaded, err := config.Load(source)
		if err != nil {
			return err
		}
		cfg = loaded
		fmt.Printf("# Configuration from: %s\n\n", source)
	} else {
		cfg = config.DefaultConfig()
		fmt.Println("# Default configuration (no config file found)")
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(content))

	return nil
}
