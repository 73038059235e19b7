package strategies

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/goindent/pkg/config"
	"github.com/yaklabco/goindent/pkg/indent"
)

// CustomStrategy is an indent strategy built from a configuration entry,
// letting users define languages without writing Go code.
type CustomStrategy struct {
	indent.BaseStrategy
	pushClosers string
}

// NewCustomStrategy compiles a configured strategy definition.
func NewCustomStrategy(name string, cfg config.StrategyConfig) (*CustomStrategy, error) {
	increase, err := regexp.Compile(cfg.Increase)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: invalid increase pattern: %w", name, err)
	}

	var decrease *regexp.Regexp
	if cfg.Decrease != "" {
		decrease, err = regexp.Compile(cfg.Decrease)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: invalid decrease pattern: %w", name, err)
		}
	}

	desc := cfg.Description
	if desc == "" {
		desc = "User-defined strategy"
	}

	return &CustomStrategy{
		BaseStrategy: indent.NewBaseStrategy(name, cfg.Language, desc, increase, decrease),
		pushClosers:  cfg.PushClosers,
	}, nil
}

// ShouldPushTrailingContent pushes the trailing content when it starts with
// one of the configured closer characters.
func (s *CustomStrategy) ShouldPushTrailingContent(_, contentAfter string) bool {
	return s.pushClosers != "" && startsWithCloser(contentAfter, s.pushClosers)
}

// RegisterConfigured compiles and registers the user-defined strategies from
// cfg. Configured strategies may shadow built-ins of the same name.
func RegisterConfigured(registry *indent.Registry, cfg *config.Config) error {
	for name, sc := range cfg.Strategies {
		s, err := NewCustomStrategy(name, sc)
		if err != nil {
			return err
		}
		registry.Register(s)
	}
	return nil
}
