package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout of the "Last modified" column.
const DateLayout = "2006-01-02 15:04:05"

// dirSize is shown in the size column of directory rows.
const dirSize = "-"

// FormatSize renders a byte count the way the listing shows it: the raw
// integer below 1024, otherwise KiB or MiB with two decimals and a K or M
// suffix.
func FormatSize(bytes int64) string {
	kib := float64(bytes) / 1024
	mib := kib / 1024
	switch {
	case mib >= 1:
		return fmt.Sprintf("%.2fM", mib)
	case kib >= 1:
		return fmt.Sprintf("%.2fK", kib)
	default:
		return strconv.FormatInt(bytes, 10)
	}
}

// FormatDate renders a modification time in the local time zone.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// LinkPath returns the slash-separated path of dir used after the link
// prefix in a page heading. Leading "./" is dropped and the current
// directory maps to "". Absolute paths under the working directory are made
// relative to it; other absolute paths lose their leading slash.
func LinkPath(dir string) string {
	cleaned := filepath.Clean(dir)

	if filepath.IsAbs(cleaned) {
		if wd, err := os.Getwd(); err == nil {
			rel, err := filepath.Rel(wd, cleaned)
			if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				cleaned = rel
			}
		}
	}

	linkPath := filepath.ToSlash(cleaned)
	if linkPath == "." {
		return ""
	}
	if vol := filepath.VolumeName(cleaned); vol != "" {
		linkPath = strings.TrimPrefix(linkPath, filepath.ToSlash(vol))
	}
	return strings.TrimLeft(linkPath, "/")
}

// joinPath appends name to dir without cleaning dir, so page titles keep
// the path exactly as the walk reached it ("./docs/sub", not "docs/sub").
func joinPath(dir string, name string) string {
	sep := string(filepath.Separator)
	return strings.TrimSuffix(dir, sep) + sep + name
}

// hrefFor returns the relative link to an entry. Directories get a trailing
// slash so static hosts serve their index page. Names that could be read as
// a URL scheme get a "./" prefix.
func hrefFor(name string, isDir bool) string {
	href := name
	if strings.Contains(name, ":") {
		href = "./" + name
	}
	if isDir {
		href += "/"
	}
	return href
}
