package tools

import (
	"fmt"
	"strings"

	"github.com/lexandro/indexage/assets"
	"github.com/lexandro/indexage/indexer"
)

// FormatListing formats the rows of one directory as human-readable text.
// Directories carry a trailing slash.
func FormatListing(dir string, rows []assets.Row) string {
	if len(rows) == 0 {
		return fmt.Sprintf("Index of %s: no entries.", dir)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Index of %s (%d entries):\n\n", dir, len(rows)))

	// Right-align the size column
	width := 0
	for _, row := range rows {
		if len(row.Size) > width {
			width = len(row.Size)
		}
	}

	for _, row := range rows {
		name := row.Name
		if row.IsDir {
			name += "/"
		}
		builder.WriteString(fmt.Sprintf("  %s  %*s  %s\n", row.Date, width, row.Size, name))
	}

	return builder.String()
}

// FormatBuildResult summarizes a finished build.
func FormatBuildResult(result indexer.Result, elapsed string) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Build complete: %d pages (%d directories, %d files listed) in %s\n",
		len(result.Pages), result.Dirs, result.Files, elapsed))
	for _, page := range result.Pages {
		builder.WriteString("  ")
		builder.WriteString(page)
		builder.WriteString("\n")
	}
	return builder.String()
}
