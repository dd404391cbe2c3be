package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexandro/indexage/ignore"
	"github.com/lexandro/indexage/indexer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListArgs defines the input parameters for the indexage_list tool.
type ListArgs struct {
	Path    string   `json:"path" jsonschema:"Directory to list"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"Names, paths or glob patterns to leave out"`
}

// ListHandler holds the dependencies for the list tool.
type ListHandler struct {
	Indexer      *indexer.Indexer
	UseGitignore bool
	Logger       *slog.Logger
}

// Handle processes an indexage_list request.
func (h *ListHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ListArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Path == "" {
		h.Logger.Warn("indexage_list called with empty path")
		return errorResult("Error: path parameter is required"), nil, nil
	}

	matcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:      args.Path,
		Patterns:     args.Exclude,
		UseGitignore: h.UseGitignore,
	})
	rows, err := h.Indexer.List(args.Path, matcher, false)
	if err != nil {
		h.Logger.Error("indexage_list failed", "path", args.Path, "error", err)
		return errorResult(fmt.Sprintf("List error: %v", err)), nil, nil
	}

	h.Logger.Info("indexage_list",
		"path", args.Path,
		"entries", len(rows),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatListing(args.Path, rows)}},
	}, nil, nil
}
