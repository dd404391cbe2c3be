package tools

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func newTestListHandler(t *testing.T) *ListHandler {
	t.Helper()
	return &ListHandler{
		Indexer: newTestIndexer(t),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func Test_ListHandler_EmptyPath(t *testing.T) {
	h := newTestListHandler(t)

	result, _, err := h.Handle(context.Background(), nil, ListArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty path")
	}
}

func Test_ListHandler_ListsSortedEntries(t *testing.T) {
	h := newTestListHandler(t)
	srcDir := t.TempDir()
	os.WriteFile(filepath.Join(srcDir, "b.txt"), make([]byte, 2048), 0644)
	os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("hello"), 0644)
	os.MkdirAll(filepath.Join(srcDir, "docs"), 0755)
	os.WriteFile(filepath.Join(srcDir, "index.html"), []byte("old"), 0644)

	result, _, err := h.Handle(context.Background(), nil, ListArgs{Path: srcDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", result.Content[0].(*mcp.TextContent).Text)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "(3 entries)") {
		t.Errorf("expected 3 entries, got:\n%s", text)
	}
	aIdx := strings.Index(text, "a.txt")
	bIdx := strings.Index(text, "b.txt")
	dIdx := strings.Index(text, "docs/")
	if aIdx < 0 || bIdx < 0 || dIdx < 0 || !(aIdx < bIdx && bIdx < dIdx) {
		t.Errorf("expected a.txt, b.txt, docs/ in order, got:\n%s", text)
	}
	if !strings.Contains(text, "2.00K") {
		t.Errorf("expected formatted size 2.00K, got:\n%s", text)
	}
	if strings.Contains(text, "index.html") {
		t.Errorf("expected index.html to be skipped, got:\n%s", text)
	}
}

func Test_ListHandler_Exclude(t *testing.T) {
	h := newTestListHandler(t)
	srcDir := t.TempDir()
	os.WriteFile(filepath.Join(srcDir, "keep.txt"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(srcDir, "drop.txt"), []byte("x"), 0644)

	result, _, err := h.Handle(context.Background(), nil, ListArgs{Path: srcDir, Exclude: []string{"drop.txt"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if strings.Contains(text, "drop.txt") {
		t.Errorf("expected drop.txt to be excluded, got:\n%s", text)
	}
	if !strings.Contains(text, "keep.txt") {
		t.Errorf("expected keep.txt to be listed, got:\n%s", text)
	}
}

func Test_ListHandler_MissingDirectory(t *testing.T) {
	h := newTestListHandler(t)

	result, _, err := h.Handle(context.Background(), nil, ListArgs{Path: filepath.Join(t.TempDir(), "missing")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for missing directory")
	}
}
