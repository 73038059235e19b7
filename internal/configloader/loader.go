// Package configloader provides configuration loading and resolution.
// It discovers a project-level config file by searching upward from the
// working directory, loads an explicit path when given, and falls back to
// defaults when nothing is found.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/goindent/internal/logging"
	"github.com/yaklabco/goindent/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// Verbose enables logging of configuration resolution steps.
	Verbose bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the resolved configuration.
	Config *config.Config

	// Source is the path the configuration was loaded from, or empty when
	// defaults were used.
	Source string
}

// Load resolves the configuration for a run.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	path := opts.ExplicitPath
	if path == "" {
		workDir := opts.WorkingDir
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("determine working directory: %w", err)
			}
			workDir = wd
		}
		discovered, err := DiscoverProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	if path == "" {
		if opts.Verbose {
			logger.Debug("no config file found, using defaults")
		}
		return &LoadResult{Config: config.Default()}, nil
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		logger.Debug("loaded config", logging.FieldPath, path)
	}

	return &LoadResult{Config: cfg, Source: path}, nil
}

func loadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}
