package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lexandro/indexage/register"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches the subcommands and returns the process exit code:
// 0 on success, 1 when the run failed, 2 on usage errors.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case register.ServeCommand:
			return runServe(args[1:], stderr)
		case "register":
			err := register.Run(register.DeriveServerName(os.Args[0]), args[1:], stdout)
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				if errors.Is(err, register.ErrUsage) {
					return 2
				}
				return 1
			}
			return 0
		}
	}
	return runBuild(args, stderr)
}

// exitCodeForParseError maps flag parsing failures to exit codes.
func exitCodeForParseError(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// setupLogger creates an slog.Logger writing to stderr or a file.
// The returned func closes the log file, if any.
func setupLogger(level string, logFile string, stderr io.Writer) (*slog.Logger, func()) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writer := stderr
	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
		} else {
			writer = f
			closeFn = func() { f.Close() }
		}
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler), closeFn
}
