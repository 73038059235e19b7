package strategies

import (
	"regexp"
	"strings"

	"github.com/yaklabco/goindent/pkg/indent"
)

// XMLStrategy indents XML and HTML element content: a line ending in an open
// tag indents its children, and a line starting with a closing tag dedents.
type XMLStrategy struct {
	indent.BaseStrategy
}

var (
	// Open tag at end of line; self-closing ("<br/>"), closing ("</p>"), and
	// declaration ("<!...", "<?...") tags do not indent.
	xmlIncrease = regexp.MustCompile(`<[A-Za-z][^>]*[^/>]>\s*$|<[A-Za-z]>\s*$`)
	xmlDecrease = regexp.MustCompile(`^\s*</`)
)

// NewXMLStrategy creates a new XML strategy.
func NewXMLStrategy() *XMLStrategy {
	return &XMLStrategy{
		BaseStrategy: indent.NewBaseStrategy(
			"xml",
			"XML",
			"Indent element content after an open tag; dedent closing tags",
			xmlIncrease,
			xmlDecrease,
		),
	}
}

// ShouldPushTrailingContent splits "<tag></tag>" so the closing tag lands on
// its own line below the cursor.
func (s *XMLStrategy) ShouldPushTrailingContent(_, contentAfter string) bool {
	return strings.HasPrefix(strings.TrimLeft(contentAfter, " \t"), "</")
}
