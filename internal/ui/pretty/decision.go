package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goindent/pkg/indent"
)

// DecisionFormatter renders an indentation outcome for the --explain flag:
// the branch taken, the replacement text with visible whitespace, and the
// caret position.
type DecisionFormatter struct {
	styles *Styles
}

// NewDecisionFormatter creates a new decision formatter.
func NewDecisionFormatter(styles *Styles) *DecisionFormatter {
	return &DecisionFormatter{styles: styles}
}

// Format renders an outcome produced for the given strategy.
func (f *DecisionFormatter) Format(strategyName string, outcome indent.Outcome) string {
	var b strings.Builder

	if !outcome.Handled {
		b.WriteString(f.styles.Declined.Render("declined"))
		b.WriteString(f.styles.Dim.Render(fmt.Sprintf("  strategy=%s", strategyName)))
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(f.styles.Handled.Render("handled"))
	b.WriteString(f.styles.Dim.Render(fmt.Sprintf("  strategy=%s", strategyName)))
	b.WriteByte('\n')

	branch := "increase"
	if outcome.LineRewrite != nil {
		branch = "decrease"
	}
	b.WriteString(f.styles.Branch.Render("branch:    " + branch))
	b.WriteByte('\n')

	if r := outcome.LineRewrite; r != nil {
		b.WriteString(fmt.Sprintf("rewrite:   [%d:%d] -> %s\n",
			r.StartOffset, r.EndOffset, f.styles.SourceLine.Render(VisibleWhitespace(r.NewText))))
	}

	b.WriteString(fmt.Sprintf("insert:    @%d %s\n",
		outcome.Edit.Offset, f.styles.SourceLine.Render(VisibleWhitespace(outcome.Edit.Text))))

	caret := indent.ResolveCaret(outcome)
	b.WriteString(f.styles.CaretMark.Render(fmt.Sprintf("caret:     @%d", caret)))
	b.WriteByte('\n')

	return b.String()
}

// VisibleWhitespace makes whitespace characters visible for display:
// newlines become "\n", tabs "\t", and spaces middle dots.
func VisibleWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", `\r\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return strings.ReplaceAll(s, " ", "·")
}
