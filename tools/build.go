package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lexandro/indexage/ignore"
	"github.com/lexandro/indexage/indexer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BuildArgs defines the input parameters for the indexage_build tool.
type BuildArgs struct {
	Path      string   `json:"path" jsonschema:"Directory to index"`
	Output    string   `json:"output,omitempty" jsonschema:"Output directory (default .)"`
	Exclude   []string `json:"exclude,omitempty" jsonschema:"Names, paths or glob patterns to leave out"`
	Preview   bool     `json:"preview,omitempty" jsonschema:"Embed hover previews of files"`
	Link      string   `json:"link,omitempty" jsonschema:"Prefix of the source link in each page heading"`
	Recursive *bool    `json:"recursive,omitempty" jsonschema:"Descend into subdirectories (default true)"`
}

// BuildHandler holds the dependencies for the build tool.
type BuildHandler struct {
	Indexer      *indexer.Indexer
	UseGitignore bool
	Logger       *slog.Logger
}

// Handle processes an indexage_build request.
func (h *BuildHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args BuildArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Path == "" {
		h.Logger.Warn("indexage_build called with empty path")
		return errorResult("Error: path parameter is required"), nil, nil
	}

	output := args.Output
	if strings.TrimSpace(output) == "" {
		output = "."
	}
	recursive := true
	if args.Recursive != nil {
		recursive = *args.Recursive
	}

	opts := indexer.Options{
		Output: output,
		Exclude: ignore.NewMatcher(ignore.MatcherOptions{
			RootDir:      args.Path,
			Patterns:     args.Exclude,
			UseGitignore: h.UseGitignore,
		}),
		Preview:   args.Preview,
		Link:      args.Link,
		Recursive: recursive,
	}

	h.Logger.Info("indexage_build started", "path", args.Path, "output", output)

	result, err := h.Indexer.Build(ctx, args.Path, opts)
	if err != nil {
		h.Logger.Error("indexage_build failed", "path", args.Path, "pagesWritten", len(result.Pages), "error", err)
		return errorResult(fmt.Sprintf("Build error after %d pages: %v", len(result.Pages), err)), nil, nil
	}

	elapsed := time.Since(start).Round(time.Millisecond).String()
	h.Logger.Info("indexage_build complete",
		"pages", len(result.Pages),
		"dirs", result.Dirs,
		"files", result.Files,
		"elapsed", elapsed,
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatBuildResult(result, elapsed)}},
	}, nil, nil
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
