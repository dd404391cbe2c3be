package indexer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lexandro/indexage/assets"
	"github.com/lexandro/indexage/ignore"
)

// IndexFileName is the page written into every visited output directory.
// Source entries with this name are never listed.
const IndexFileName = "index.html"

// ErrIndexExists is returned when a page would overwrite an existing file.
// It wraps fs.ErrExist.
var ErrIndexExists = fmt.Errorf("index page already exists: %w", fs.ErrExist)

// Entry is one immediate child of a listed directory.
type Entry struct {
	Name    string
	Path    string // listed directory joined with Name
	IsDir   bool
	ModTime time.Time
	Size    int64
}

// Options controls one traversal branch. It is passed by value: each
// recursive call receives a copy with its own Output, while the other
// settings are shared with the parent.
type Options struct {
	Output    string          // directory receiving this branch's index.html
	Exclude   *ignore.Matcher // nil excludes nothing
	Preview   bool
	Link      string // prefix of the heading link
	Recursive bool
}

// Result summarizes a build.
type Result struct {
	Pages []string // written pages, in write order (children before parents)
	Dirs  int
	Files int
}

// Indexer renders directory listings with a fixed theme.
type Indexer struct {
	theme  assets.Theme
	logger *slog.Logger
}

// New creates an indexer. A nil logger discards output.
func New(theme assets.Theme, logger *slog.Logger) *Indexer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Indexer{theme: theme, logger: logger}
}

// Build writes an index page for sourceDir and, when opts.Recursive is set,
// for every non-excluded directory below it. Subdirectories are processed
// depth-first before the page of their parent is written. The first error
// aborts the whole run; pages written up to that point are left in place.
// When the output root lies inside the source tree it is neither listed nor
// descended into.
func (ix *Indexer) Build(ctx context.Context, sourceDir string, opts Options) (Result, error) {
	var result Result
	outputRoot, err := filepath.Abs(opts.Output)
	if err != nil {
		return result, fmt.Errorf("resolving output directory %s: %w", opts.Output, err)
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory %s: %w", opts.Output, err)
	}
	err = ix.build(ctx, sourceDir, opts, outputRoot, &result)
	return result, err
}

func (ix *Indexer) build(ctx context.Context, dir string, opts Options, outputRoot string, result *Result) error {
	entries, err := ReadEntries(dir, opts.Exclude)
	if err != nil {
		return err
	}

	rows := make([]assets.Row, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir && isOutputRoot(entry.Path, outputRoot) {
			ix.logger.Debug("skipping output directory", "path", entry.Path)
			continue
		}

		rows = append(rows, ix.row(entry, opts.Preview))
		if !entry.IsDir {
			result.Files++
			continue
		}
		result.Dirs++
		if !opts.Recursive {
			continue
		}

		child := opts
		child.Output = filepath.Join(opts.Output, entry.Name)
		if err := os.MkdirAll(child.Output, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", child.Output, err)
		}
		if err := ix.build(ctx, entry.Path, child, outputRoot, result); err != nil {
			return err
		}
	}

	link := opts.Link + LinkPath(dir)
	page := assets.Page{
		Title:   dir,
		Link:    link,
		Preview: opts.Preview,
		Rows:    rows,
	}
	pagePath, err := ix.writePage(opts.Output, page)
	if err != nil {
		return err
	}

	result.Pages = append(result.Pages, pagePath)
	ix.logger.Debug("wrote index page", "source", dir, "page", pagePath, "rows", len(rows))
	return nil
}

// isOutputRoot reports whether entryPath names the absolute outputRoot.
func isOutputRoot(entryPath string, outputRoot string) bool {
	abs, err := filepath.Abs(entryPath)
	return err == nil && abs == outputRoot
}

// List returns the rows of a single directory without recursing or writing.
func (ix *Indexer) List(dir string, exclude *ignore.Matcher, preview bool) ([]assets.Row, error) {
	entries, err := ReadEntries(dir, exclude)
	if err != nil {
		return nil, err
	}
	rows := make([]assets.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ix.row(entry, preview))
	}
	return rows, nil
}

// ReadEntries lists the immediate children of dir sorted by name, leaving
// out index.html and everything exclude matches.
func ReadEntries(dir string, exclude *ignore.Matcher) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		name := d.Name()
		if name == IndexFileName {
			continue
		}
		entryPath := joinPath(dir, name)
		if exclude.ShouldExclude(entryPath, name, d.IsDir()) {
			continue
		}

		// Stat follows symlinks, so a link to a directory is listed as one.
		info, err := os.Stat(entryPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entryPath, err)
		}
		entries = append(entries, Entry{
			Name:    name,
			Path:    entryPath,
			IsDir:   info.IsDir(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return entries, nil
}

// row builds the view model of one entry.
func (ix *Indexer) row(entry Entry, preview bool) assets.Row {
	row := assets.Row{
		Name:  entry.Name,
		Href:  hrefFor(entry.Name, entry.IsDir),
		IsDir: entry.IsDir,
		Date:  FormatDate(entry.ModTime),
		Size:  dirSize,
		Icon:  ix.theme.FolderIcon(),
	}
	if entry.IsDir {
		return row
	}

	row.Size = FormatSize(entry.Size)
	row.Icon = ix.theme.FileIcon()
	if preview {
		row.Class = assets.ThumbnailClass
		row.Embed = assets.EmbedImage
		if strings.HasSuffix(entry.Name, ".md") {
			row.Embed = assets.EmbedIframe
		}
	}
	return row
}

// writePage renders page and creates outputDir/index.html exclusively.
// Nothing is written when the file already exists or rendering fails.
func (ix *Indexer) writePage(outputDir string, page assets.Page) (string, error) {
	var buf bytes.Buffer
	if err := ix.theme.Render(&buf, page); err != nil {
		return "", fmt.Errorf("rendering index of %s: %w", page.Title, err)
	}

	pagePath := filepath.Join(outputDir, IndexFileName)
	f, err := os.OpenFile(pagePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s, aborting", ErrIndexExists, pagePath)
		}
		return "", fmt.Errorf("creating %s: %w", pagePath, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", pagePath, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", pagePath, err)
	}
	return pagePath, nil
}
