package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lexandro/indexage/assets"
	"github.com/lexandro/indexage/indexer"
	"github.com/lexandro/indexage/server"
	"github.com/lexandro/indexage/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// runServe starts the MCP server on stdio. Logs never go to stdout, which
// carries the protocol.
func runServe(args []string, stderr io.Writer) int {
	var flags commonFlags
	fs := flag.NewFlagSet("indexage serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return exitCodeForParseError(err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "serve takes no arguments, got %v\n", fs.Args())
		return 2
	}

	logger, closeLog := setupLogger(flags.logLevel, flags.logFile, stderr)
	defer closeLog()

	theme, err := assets.LoadTheme(flags.template, flags.iconBase)
	if err != nil {
		logger.Error("failed to load theme", "error", err)
		return 1
	}
	ix := indexer.New(theme, logger)

	buildHandler := &tools.BuildHandler{Indexer: ix, UseGitignore: flags.gitignore, Logger: logger}
	listHandler := &tools.ListHandler{Indexer: ix, UseGitignore: flags.gitignore, Logger: logger}
	mcpServer := server.Setup(buildHandler, listHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("MCP server starting on stdio", "version", server.Version)
	if err := mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("MCP server error", "error", err)
		return 1
	}
	return 0
}
