package server

import (
	"github.com/lexandro/indexage/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients.
const Version = "0.2.0"

// Setup creates and configures the MCP server with all tool registrations.
func Setup(buildHandler *tools.BuildHandler, listHandler *tools.ListHandler) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "indexage",
			Version: Version,
		},
		&mcp.ServerOptions{
			Instructions: `This server generates static Apache-style directory listings.

- Use indexage_list to see what a directory's index page would contain.
- Use indexage_build to write index.html files for a directory tree. Existing index.html files are never overwritten; the build aborts instead.`,
		},
	)

	// Register indexage_build tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "indexage_build",
		Description: `Write an index.html listing into the output directory for the given path and, unless recursive is false, for every subdirectory.

Exclusions:
  - a bare name (e.g. "node_modules") skips every entry with that name
  - a path (e.g. "docs/drafts") skips that entry only
  - a glob (e.g. "**/*.tmp") skips matching entries

The build fails if any target index.html already exists.`,
	}, buildHandler.Handle)

	// Register indexage_list tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "indexage_list",
		Description: "List one directory the way its index page would: sorted names, modification dates and sizes. Writes nothing.",
	}, listHandler.Handle)

	return mcpServer
}
