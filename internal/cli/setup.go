package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goindent/internal/configloader"
	"github.com/yaklabco/goindent/pkg/config"
	"github.com/yaklabco/goindent/pkg/indent"
	"github.com/yaklabco/goindent/pkg/indent/strategies"
	"github.com/yaklabco/goindent/pkg/langdetect"
)

// loadRunConfig resolves the configuration for a command invocation, honoring
// the root command's persistent --config flag.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	return loadResult.Config, nil
}

// buildRegistry returns a registry holding the built-in strategies plus any
// user-defined strategies from the configuration.
func buildRegistry(cfg *config.Config) (*indent.Registry, error) {
	registry := indent.NewRegistry()
	strategies.RegisterAll(registry)
	strategies.RegisterLanguageAliases(registry)
	if err := strategies.RegisterConfigured(registry, cfg); err != nil {
		return nil, err
	}
	return registry, nil
}

// resolveStrategy picks the strategy for a file: the explicit flag wins, then
// language detection on the file, then the configured default.
func resolveStrategy(registry *indent.Registry, cfg *config.Config, explicit, filename string, content []byte) (indent.Strategy, error) {
	key := explicit
	if key == "" {
		key = langdetect.DetectStrategy(filename, content)
	}
	if key == "" {
		key = cfg.DefaultStrategy
	}

	strat, ok := registry.Get(key)
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", key)
	}
	return strat, nil
}

// readInput reads the file argument, treating "-" as stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}
