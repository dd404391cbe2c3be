package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides which directory entries are left out of a listing.
// It combines the exclusion set given on the command line with, optionally,
// the .gitignore and .indexageignore files found in the walk root.
// A Matcher is immutable after construction.
type Matcher struct {
	rootDir        string
	patterns       []string
	gitIgnore      gitignore.GitIgnore
	indexageIgnore gitignore.GitIgnore
}

// MatcherOptions configures the exclusion matcher.
type MatcherOptions struct {
	RootDir      string
	Patterns     []string
	UseGitignore bool
}

// NewMatcher creates a matcher rooted at options.RootDir.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:  options.RootDir,
		patterns: options.Patterns,
	}

	if options.UseGitignore {
		matcher.gitIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
		matcher.indexageIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".indexageignore"), options.RootDir)
	}

	return matcher
}

// Patterns returns the configured exclusion patterns.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return m.patterns
}

// ShouldExclude reports whether the entry called name, reached at
// entryPath (the listed directory joined with name), is excluded.
// A nil Matcher excludes nothing.
func (m *Matcher) ShouldExclude(entryPath string, name string, isDir bool) bool {
	if m == nil {
		return false
	}

	relativePath := m.relative(entryPath)

	for _, pattern := range m.patterns {
		if pattern == name || pattern == entryPath {
			return true
		}
		cleaned := filepath.ToSlash(filepath.Clean(pattern))
		if cleaned == relativePath || cleaned == filepath.ToSlash(filepath.Clean(entryPath)) {
			return true
		}
		if isGlob(pattern) && matchesGlob(pattern, relativePath, name) {
			return true
		}
	}

	if m.gitIgnore != nil {
		match := m.gitIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	if m.indexageIgnore != nil {
		match := m.indexageIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	return false
}

// relative returns entryPath relative to the walk root, with forward slashes.
func (m *Matcher) relative(entryPath string) string {
	relativePath, err := filepath.Rel(m.rootDir, entryPath)
	if err != nil {
		relativePath = entryPath
	}
	return filepath.ToSlash(relativePath)
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// matchesGlob tries a doublestar pattern against the relative path, then the base name.
func matchesGlob(pattern string, relativePath string, name string) bool {
	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return false
	}
	if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
		return true
	}
	matched, err := doublestar.Match(pattern, name)
	return err == nil && matched
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Returns nil when the file does not exist or cannot be opened.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
