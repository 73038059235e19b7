package strategies

import (
	"regexp"

	"github.com/yaklabco/goindent/pkg/indent"
)

// PythonStrategy indents Python suites: a line ending in a colon indents the
// next line. Python has no closing token, so no decrease pattern is
// configured and the decrease branch never runs.
type PythonStrategy struct {
	indent.BaseStrategy
}

var pythonIncrease = regexp.MustCompile(`:\s*$`)

// NewPythonStrategy creates a new Python strategy.
func NewPythonStrategy() *PythonStrategy {
	return &PythonStrategy{
		BaseStrategy: indent.NewBaseStrategy(
			"python",
			"Python",
			"Indent the line after a colon-terminated suite header",
			pythonIncrease,
			nil,
		),
	}
}
