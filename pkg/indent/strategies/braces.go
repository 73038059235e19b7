package strategies

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goindent/pkg/indent"
)

// BracesStrategy indents C-style languages: a line ending in an opening
// brace, bracket, or parenthesis indents the next line, and a line starting
// with the matching closer dedents.
type BracesStrategy struct {
	indent.BaseStrategy
}

var (
	bracesIncrease = regexp.MustCompile(`[\{\[\(]\s*$`)
	bracesDecrease = regexp.MustCompile(`^\s*[\}\]\)]`)
)

// NewBracesStrategy creates a new braces strategy.
func NewBracesStrategy() *BracesStrategy {
	return &BracesStrategy{
		BaseStrategy: indent.NewBaseStrategy(
			"braces",
			"C-like",
			"Indent after an opening brace, bracket, or parenthesis; dedent lines starting with the matching closer",
			bracesIncrease,
			bracesDecrease,
		),
	}
}

// ShouldPushTrailingContent splits the edit when a closer immediately follows
// the cursor, turning "{}" into an open brace, an indented blank line, and
// the closer on its own line.
func (s *BracesStrategy) ShouldPushTrailingContent(_, contentAfter string) bool {
	return startsWithCloser(contentAfter, "}])")
}

// startsWithCloser reports whether the first non-blank character of s is one
// of the given closers.
func startsWithCloser(s, closers string) bool {
	trimmed := strings.TrimLeft(s, " \t")
	return trimmed != "" && strings.ContainsRune(closers, rune(trimmed[0]))
}
