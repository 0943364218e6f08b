// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apidoc2oas capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/apidoc2oas"
)

const serverInstructions = `apidoc2oas MCP server — generates OpenAPI documents from apidoc-style documentation artifacts.

Inputs are the artifacts an apidoc extraction produces: api_data.json (the flat endpoint records) and optionally api_project.json (project metadata for the info and servers members).

Tools:
- generate — transform the artifacts into an OpenAPI 3.0 document. Supports strict mode, template merging, and file output.
- inspect — summarize the artifacts without generating: endpoint counts, groups, methods, and structural problems.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidoc2oas", Version: apidoc2oas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate an OpenAPI 3.0 document from apidoc documentation artifacts. Provide the endpoint records (api_data.json) and optionally project metadata (api_project.json). Use strict=true to fail on any warning, template to overlay the output onto a base document, and output to write to a file instead of returning inline. Format is yaml (default) or json.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect apidoc documentation artifacts without generating a document. Returns endpoint counts, group and method distributions, and any structural problems the records carry.",
	}, handleInspect)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
