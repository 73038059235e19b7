package indent

import (
	"fmt"
	"strings"

	"github.com/yaklabco/goindent/pkg/textdoc"
)

// defaultTabWidth is the fallback tab width when none is configured.
const defaultTabWidth = 4

// Options carries the host editor's indentation preferences.
type Options struct {
	// Unit is the string for one indent level: a single tab or a run of
	// spaces. Defaults to a tab when empty.
	Unit string

	// TabWidth is the fallback tab width in spaces when inference cannot
	// determine one from the buffer. Defaults to 4 when < 1.
	TabWidth int
}

func (o Options) withDefaults() Options {
	if o.Unit == "" {
		o.Unit = "\t"
	}
	if o.TabWidth < 1 {
		o.TabWidth = defaultTabWidth
	}
	return o
}

// Decide computes the indentation outcome for a newline about to be inserted
// at cursorOffset. It is a pure read-only function: the returned Outcome
// describes the adjusted insertion (and, on the decrease branch, the rewrite
// of the current line) without touching the document.
//
// The newline argument is the line delimiter the host is inserting ("\n" or
// "\r\n"). A non-nil error reports a document access with a stale position;
// callers should log it and treat the keystroke as declined.
func Decide(doc *textdoc.Document, strat Strategy, cursorOffset int, newline string, opts Options) (Outcome, error) {
	// Nothing to indent against before any content exists.
	if cursorOffset <= 0 || doc.Len() == 0 {
		return Declined(), nil
	}

	opts = opts.withDefaults()

	lineNum, err := doc.LineOfOffset(cursorOffset)
	if err != nil {
		return Declined(), fmt.Errorf("locate cursor line: %w", err)
	}
	line, err := doc.Line(lineNum)
	if err != nil {
		return Declined(), fmt.Errorf("read cursor line: %w", err)
	}
	before, err := doc.TextRange(line.StartOffset, cursorOffset)
	if err != nil {
		return Declined(), fmt.Errorf("read line content before cursor: %w", err)
	}

	// The untouched insertion; no-op outcomes return it as-is so the host
	// inserts a plain newline without applying its own indent logic.
	edit := PendingEdit{
		Offset:      cursorOffset,
		Text:        newline,
		ShiftsCaret: true,
		CaretOffset: NoCaretOverride,
	}

	if strat.IncreasePattern().MatchString(before) {
		return decideIncrease(doc, strat, line, cursorOffset, before, newline, opts)
	}

	if dec := strat.DecreasePattern(); dec != nil && dec.MatchString(before) {
		return decideDecrease(doc, line, lineNum, edit, newline, opts)
	}

	return Declined(), nil
}

// decideIncrease builds the increase-branch outcome: newline, carried-forward
// indent, one extra unit, and optionally a second line pushing the trailing
// content back to the original indent level.
func decideIncrease(doc *textdoc.Document, strat Strategy, line textdoc.LineInfo, cursorOffset int, before, newline string, opts Options) (Outcome, error) {
	previousIndent := leadingWhitespace(before)

	restEnd := line.NewlineStart
	if restEnd < cursorOffset {
		restEnd = cursorOffset
	}
	rest, err := doc.TextRange(cursorOffset, restEnd)
	if err != nil {
		return Declined(), fmt.Errorf("read line content after cursor: %w", err)
	}

	startIndent := newline + previousIndent + opts.Unit
	text := startIndent
	if strat.ShouldPushTrailingContent(before, rest) {
		text = startIndent + newline + previousIndent
	}

	return Outcome{
		Handled: true,
		Edit: PendingEdit{
			Offset:      cursorOffset,
			Text:        text,
			ShiftsCaret: false,
			// The caret lands right after the deepest indent in both the
			// split and non-split layouts.
			CaretOffset: cursorOffset + len(startIndent),
		},
	}, nil
}

// decideDecrease builds the decrease-branch outcome: the current line is
// rewritten one indent level shallower and the newline carries the decreased
// indent forward.
func decideDecrease(doc *textdoc.Document, line textdoc.LineInfo, lineNum int, edit PendingEdit, newline string, opts Options) (Outcome, error) {
	// First line has nothing to dedent against; report handled so the host
	// skips its own indent logic.
	if lineNum == 0 {
		return Outcome{Handled: true, Edit: edit}, nil
	}

	currentIndent, err := doc.LeadingWhitespace(lineNum)
	if err != nil {
		return Declined(), fmt.Errorf("read current line indent: %w", err)
	}
	if currentIndent == "" {
		return Outcome{Handled: true, Edit: edit}, nil
	}

	decreasedIndent, err := computeDecreasedIndent(doc, lineNum, currentIndent, opts.TabWidth)
	if err != nil {
		return Declined(), err
	}

	lineText, err := doc.LineText(lineNum)
	if err != nil {
		return Declined(), fmt.Errorf("read current line content: %w", err)
	}
	newContent := decreasedIndent + lineText[len(currentIndent):]

	rewrite := textdoc.Replace(line.StartOffset, line.NewlineStart, newContent)
	return Outcome{
		Handled: true,
		Edit: PendingEdit{
			Offset:      line.StartOffset + len(newContent),
			Text:        newline + decreasedIndent,
			ShiftsCaret: false,
			CaretOffset: NoCaretOverride,
		},
		LineRewrite: &rewrite,
	}, nil
}

// computeDecreasedIndent derives the indent for a line that matched the
// decrease pattern from its predecessor's indent. When the previous line is
// already shallower its indent is reused unchanged; otherwise exactly one
// indent level is removed from it. The result is always a prefix of the
// previous line's indent.
func computeDecreasedIndent(doc *textdoc.Document, lineNum int, currentIndent string, tabWidth int) (string, error) {
	previousIndent, err := doc.LeadingWhitespace(lineNum - 1)
	if err != nil {
		return "", fmt.Errorf("read previous line indent: %w", err)
	}

	if len(previousIndent) < len(currentIndent) {
		return previousIndent, nil
	}

	if strings.HasSuffix(previousIndent, "\t") {
		return previousIndent[:len(previousIndent)-1], nil
	}

	remove := InferTabWidth(doc, lineNum, tabWidth)
	if remove > len(previousIndent) {
		remove = len(previousIndent)
	}
	suffix := previousIndent[len(previousIndent)-remove:]
	if i := strings.LastIndexByte(suffix, '\t'); i != -1 {
		// Only consume the spaces after the last tab in the suffix; a tab is
		// never partially removed.
		remove -= i + 1
	}
	return previousIndent[:len(previousIndent)-remove], nil
}

// leadingWhitespace returns the run of spaces and tabs at the start of s.
func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}
