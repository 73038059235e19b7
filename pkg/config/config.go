// Package config defines core configuration types for goindent.
// These types are pure data structures; loading and discovery live in the
// configloader package.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// IndentUnitKind selects what one indent level is made of.
type IndentUnitKind string

const (
	// UnitTab indents with a single tab character per level.
	UnitTab IndentUnitKind = "tab"

	// UnitSpace indents with IndentWidth spaces per level.
	UnitSpace IndentUnitKind = "space"
)

// IsValid returns true if the unit kind is valid.
func (k IndentUnitKind) IsValid() bool {
	switch k {
	case UnitTab, UnitSpace:
		return true
	default:
		return false
	}
}

// StrategyConfig defines a user-supplied indent strategy: the two patterns
// and the closers that trigger the push-trailing split.
type StrategyConfig struct {
	// Language is the display name of the language this strategy targets.
	Language string `yaml:"language"`

	// Description is a short description shown in listings.
	Description string `yaml:"description"`

	// Increase is the regular expression whose match on the pre-cursor line
	// content adds one indent level. Required.
	Increase string `yaml:"increase"`

	// Decrease is the regular expression whose match dedents the line.
	// Empty disables the decrease behavior.
	Decrease string `yaml:"decrease"`

	// PushClosers lists the characters that, when immediately following the
	// cursor, push the trailing content onto its own line (e.g. "}])").
	PushClosers string `yaml:"push_closers"`
}

// Config is the root configuration structure for goindent.
type Config struct {
	// IndentUnit selects tabs or spaces for one indent level.
	IndentUnit IndentUnitKind `yaml:"indent_unit"`

	// IndentWidth is the number of spaces per level when IndentUnit is
	// "space". Ignored for tabs.
	IndentWidth int `yaml:"indent_width"`

	// TabWidth is the fallback tab width when inference finds no signal in
	// the buffer.
	TabWidth int `yaml:"tab_width"`

	// DefaultStrategy names the strategy used when none is selected
	// explicitly and detection finds nothing better.
	DefaultStrategy string `yaml:"default_strategy"`

	// Strategies contains user-defined strategies keyed by name. They are
	// registered alongside the built-ins and may shadow them.
	Strategies map[string]StrategyConfig `yaml:"strategies,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		IndentUnit:      UnitTab,
		IndentWidth:     4,
		TabWidth:        4,
		DefaultStrategy: "braces",
	}
}

// Unit returns the literal indent-unit string the configuration describes:
// a tab, or IndentWidth spaces.
func (c *Config) Unit() string {
	if c.IndentUnit == UnitSpace {
		width := c.IndentWidth
		if width < 1 {
			width = 1
		}
		return strings.Repeat(" ", width)
	}
	return "\t"
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.IndentUnit.IsValid() {
		return fmt.Errorf("invalid indent_unit %q: must be %q or %q", c.IndentUnit, UnitTab, UnitSpace)
	}
	if c.IndentUnit == UnitSpace && c.IndentWidth < 1 {
		return fmt.Errorf("invalid indent_width %d: must be >= 1", c.IndentWidth)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("invalid tab_width %d: must be >= 1", c.TabWidth)
	}
	for name, sc := range c.Strategies {
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("strategy %q: %w", name, err)
		}
	}
	return nil
}

// Validate checks a strategy definition: the increase pattern is required and
// both patterns must compile.
func (s *StrategyConfig) Validate() error {
	if s.Increase == "" {
		return fmt.Errorf("increase pattern is required")
	}
	if _, err := regexp.Compile(s.Increase); err != nil {
		return fmt.Errorf("invalid increase pattern: %w", err)
	}
	if s.Decrease != "" {
		if _, err := regexp.Compile(s.Decrease); err != nil {
			return fmt.Errorf("invalid decrease pattern: %w", err)
		}
	}
	return nil
}
