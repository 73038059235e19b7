package strategies

import (
	"regexp"

	"github.com/yaklabco/goindent/pkg/indent"
)

// RubyStrategy indents keyword-delimited Ruby blocks: class/def/if/do lines
// indent their body, and "end" and its mid-block keywords dedent.
type RubyStrategy struct {
	indent.BaseStrategy
}

var (
	rubyIncrease = regexp.MustCompile(`^\s*(?:class|module|def|if|unless|while|until|case|begin|for)\b[^;]*$|\bdo(?:\s*\|[^|]*\|)?\s*$|[\{\[]\s*$`)
	rubyDecrease = regexp.MustCompile(`^\s*(?:end|else|elsif|when|rescue|ensure)\b|^\s*[\}\]]`)
)

// NewRubyStrategy creates a new Ruby strategy.
func NewRubyStrategy() *RubyStrategy {
	return &RubyStrategy{
		BaseStrategy: indent.NewBaseStrategy(
			"ruby",
			"Ruby",
			"Indent after block-opening keywords and braces; dedent end, else, rescue, and friends",
			rubyIncrease,
			rubyDecrease,
		),
	}
}

// ShouldPushTrailingContent splits brace and bracket literals; keyword blocks
// close with "end" on a later line, so nothing is pushed for them.
func (s *RubyStrategy) ShouldPushTrailingContent(_, contentAfter string) bool {
	return startsWithCloser(contentAfter, "}]")
}
