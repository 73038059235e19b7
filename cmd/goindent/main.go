// Package main is the entry point for the goindent CLI.
package main

import (
	"os"

	"github.com/yaklabco/goindent/internal/cli"
	"github.com/yaklabco/goindent/internal/logging"

	// Import strategies package to register built-in strategies via init().
	_ "github.com/yaklabco/goindent/pkg/indent/strategies"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitError
	}

	return cli.ExitSuccess
}
