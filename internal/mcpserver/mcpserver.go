// Package mcpserver exposes the complexity estimator as MCP tools over
// stdio, so agents can analyze code without shelling out to the CLI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers all augur analysis tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all augur tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "augur",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all augur tools to the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_complexity",
		Description: describeComplexity(),
	}, handleAnalyzeComplexity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_optimizations",
		Description: describeSuggest(),
	}, handleSuggestOptimizations)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_languages",
		Description: describeLanguages(),
	}, handleListLanguages)
}
