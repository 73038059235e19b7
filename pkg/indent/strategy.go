// Package indent provides the newline auto-indentation decision engine:
// regexp-driven increase/decrease matching, replacement indent computation,
// and tab-width inference from surrounding buffer content.
package indent

import "regexp"

// Strategy defines the per-language extension point for the decision engine.
// A strategy supplies the increase/decrease patterns matched against the line
// content before the cursor, and decides whether an increase should push the
// content trailing the cursor onto its own line.
type Strategy interface {
	// Name returns the unique identifier for this strategy (e.g., "braces").
	Name() string

	// Language returns the language this strategy targets, as a display name
	// (e.g., "Ruby"). Used for detection and listings.
	Language() string

	// Description returns a short description of the strategy's behavior.
	Description() string

	// IncreasePattern returns the pattern whose match on the pre-cursor line
	// content signals "add one indent level on the next line". Never nil.
	IncreasePattern() *regexp.Regexp

	// DecreasePattern returns the pattern whose match signals "dedent this
	// line relative to its predecessor". May be nil, in which case the
	// decrease branch of the engine never executes.
	DecreasePattern() *regexp.Regexp

	// ShouldPushTrailingContent reports whether an increase should emit a
	// second newline so that contentAfter (e.g., a closing bracket) lands on
	// its own line at the original indent level, leaving the cursor on an
	// indented blank line between them.
	//
	// Called only on the increase branch, after the increase pattern matched.
	ShouldPushTrailingContent(contentBefore, contentAfter string) bool
}

// BaseStrategy provides a default implementation of the Strategy interface.
// Embed this in strategy implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseStrategy struct {
	name     string         // Unique identifier (e.g., "braces")
	language string         // Target language display name
	desc     string         // Short behavior description
	increase *regexp.Regexp // Required increase pattern
	decrease *regexp.Regexp // Optional decrease pattern
}

// NewBaseStrategy creates a BaseStrategy with the given properties.
// The increase pattern is required; decrease may be nil.
func NewBaseStrategy(name, language, desc string, increase, decrease *regexp.Regexp) BaseStrategy {
	if increase == nil {
		panic("indent: strategy " + name + " requires an increase pattern")
	}
	return BaseStrategy{
		name:     name,
		language: language,
		desc:     desc,
		increase: increase,
		decrease: decrease,
	}
}

// Name returns the unique identifier for this strategy.
func (s *BaseStrategy) Name() string {
	return s.name
}

// Language returns the language this strategy targets.
func (s *BaseStrategy) Language() string {
	return s.language
}

// Description returns a short description of the strategy's behavior.
func (s *BaseStrategy) Description() string {
	return s.desc
}

// IncreasePattern returns the increase pattern.
func (s *BaseStrategy) IncreasePattern() *regexp.Regexp {
	return s.increase
}

// DecreasePattern returns the decrease pattern, or nil when not configured.
func (s *BaseStrategy) DecreasePattern() *regexp.Regexp {
	return s.decrease
}

// ShouldPushTrailingContent reports false by default; strategies for
// bracket-paired languages override this.
func (s *BaseStrategy) ShouldPushTrailingContent(_, _ string) bool {
	return false
}
