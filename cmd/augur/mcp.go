package main

import (
	"fmt"

	"github.com/augurtools/augur/internal/mcpserver"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP (Model Context Protocol) server for LLM tool integration",
	Long: `Starts an MCP server over stdio transport that exposes augur's
estimator as tools that LLMs can invoke.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "augur": {
        "command": "augur",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - analyze_complexity      Big-O estimates and efficiency scores
  - suggest_optimizations   Prioritized optimization suggestions
  - list_languages          Supported languages and extensions`,
	RunE: runMCP,
}

var mcpManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the MCP server manifest (server.json)",
	RunE:  runMCPManifest,
}

func init() {
	mcpCmd.AddCommand(mcpManifestCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	server := mcpserver.NewServer(version)
	return server.Run(cmd.Context())
}

func runMCPManifest(cmd *cobra.Command, args []string) error {
	data, err := mcpserver.GenerateManifest(version)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
