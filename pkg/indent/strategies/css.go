package strategies

import (
	"regexp"

	"github.com/yaklabco/goindent/pkg/indent"
)

// CSSStrategy indents CSS rule bodies: a selector line ending in "{" indents
// the declarations, and a line starting with "}" closes the block.
type CSSStrategy struct {
	indent.BaseStrategy
}

var (
	cssIncrease = regexp.MustCompile(`\{\s*$`)
	cssDecrease = regexp.MustCompile(`^\s*\}`)
)

// NewCSSStrategy creates a new CSS strategy.
func NewCSSStrategy() *CSSStrategy {
	return &CSSStrategy{
		BaseStrategy: indent.NewBaseStrategy(
			"css",
			"CSS",
			"Indent declarations after a selector's opening brace; dedent the closing brace",
			cssIncrease,
			cssDecrease,
		),
	}
}

// ShouldPushTrailingContent splits "{}" so the closing brace lands on its own
// line below the cursor.
func (s *CSSStrategy) ShouldPushTrailingContent(_, contentAfter string) bool {
	return startsWithCloser(contentAfter, "}")
}
