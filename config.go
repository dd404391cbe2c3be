package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lexandro/indexage/ignore"
	"github.com/lexandro/indexage/indexer"
)

// excludePatterns is a repeatable CLI flag for exclusion names, paths and globs.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

// valueBool is a boolean flag that takes an explicit value ("-p true"),
// unlike flag.Bool which only accepts the "-p=true" form.
type valueBool bool

func (b *valueBool) String() string { return strconv.FormatBool(bool(*b)) }
func (b *valueBool) Set(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", value)
	}
	*b = valueBool(v)
	return nil
}

// commonFlags are shared by the build and serve commands.
type commonFlags struct {
	logLevel  string
	logFile   string
	template  string
	iconBase  string
	gitignore bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	fs.StringVar(&c.logFile, "log-file", "", "Log file path (default: stderr)")
	fs.StringVar(&c.template, "template", "", "HTML template file redefining \"page\" and/or \"row\"")
	fs.StringVar(&c.iconBase, "icons", "", "Prefix for folder.gif and unknown.gif (default: relative to each page)")
	fs.BoolVar(&c.gitignore, "gitignore", false, "Also exclude entries matched by .gitignore and .indexageignore in the root")
}

// buildConfig holds the parsed arguments of a build run.
type buildConfig struct {
	commonFlags
	path      string
	output    string
	excludes  excludePatterns
	recursive valueBool
	link      string
	preview   valueBool
}

var errUsage = errors.New("usage error")

// parseBuildFlags parses the build command line. Flags may appear before or
// after the positional path.
func parseBuildFlags(args []string, stderr io.Writer) (*buildConfig, error) {
	cfg := &buildConfig{recursive: true}

	fs := flag.NewFlagSet("indexage", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Create Apache-like index.html listings for a directory tree.\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  indexage [flags] <path>\n")
		fmt.Fprintf(stderr, "  indexage serve [flags]                 # MCP server on stdio\n")
		fmt.Fprintf(stderr, "  indexage register project|user [...]   # add the MCP server to a client config\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	for _, name := range []string{"o", "output"} {
		fs.StringVar(&cfg.output, name, ".", "Output folder")
	}
	for _, name := range []string{"e", "exclude"} {
		fs.Var(&cfg.excludes, name, "Exclude a name, path or glob (repeatable)")
	}
	for _, name := range []string{"r", "recursive"} {
		fs.Var(&cfg.recursive, name, "Descend into subdirectories (true|false)")
	}
	for _, name := range []string{"l", "link"} {
		fs.StringVar(&cfg.link, name, "", "Prefix of the source link in each heading")
	}
	for _, name := range []string{"p", "preview"} {
		fs.Var(&cfg.preview, name, "Add previews shown when hovering files (true|false)")
	}
	cfg.commonFlags.register(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return nil, err
	}
	if len(positional) != 1 {
		fmt.Fprintf(stderr, "expected exactly one <path> argument, got %d\n", len(positional))
		fs.Usage()
		return nil, errUsage
	}

	cfg.path = positional[0]
	if strings.TrimSpace(cfg.output) == "" {
		cfg.output = "."
	}
	return cfg, nil
}

// parseInterspersed parses flags mixed with positional arguments and
// returns the positionals in order. Everything after a "--" terminator is
// positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// options converts the parsed flags into indexer options.
func (c *buildConfig) options() indexer.Options {
	return indexer.Options{
		Output: c.output,
		Exclude: ignore.NewMatcher(ignore.MatcherOptions{
			RootDir:      c.path,
			Patterns:     c.excludes,
			UseGitignore: c.gitignore,
		}),
		Preview:   bool(c.preview),
		Link:      c.link,
		Recursive: bool(c.recursive),
	}
}
