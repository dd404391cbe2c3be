package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/lexandro/indexage/assets"
	"github.com/lexandro/indexage/indexer"
	"github.com/lexandro/indexage/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_Setup_RegistersTools(t *testing.T) {
	theme, err := assets.DefaultTheme()
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ix := indexer.New(theme, logger)

	mcpServer := Setup(
		&tools.BuildHandler{Indexer: ix, Logger: logger},
		&tools.ListHandler{Indexer: ix, Logger: logger},
	)

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connecting server: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connecting client: %v", err)
	}
	defer clientSession.Close()

	listed, err := clientSession.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("listing tools: %v", err)
	}

	names := make(map[string]bool)
	for _, tool := range listed.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"indexage_build", "indexage_list"} {
		if !names[want] {
			t.Errorf("expected tool %s to be registered, got %v", want, names)
		}
	}
}
