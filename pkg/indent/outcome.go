package indent

import "github.com/yaklabco/goindent/pkg/textdoc"

// PendingEdit describes the text about to be inserted for the newline
// keystroke, after the engine has adjusted it. The host owns one pending
// insertion per newline event; the engine returns the adjusted description
// by value instead of mutating host state.
type PendingEdit struct {
	// Offset is the byte offset where Text is inserted.
	Offset int

	// Text is the replacement text for the keystroke (newline plus indent).
	Text string

	// ShiftsCaret reports whether the caret should auto-advance by len(Text)
	// after insertion. The engine disables this whenever it positions the
	// caret explicitly or rewrites the current line.
	ShiftsCaret bool

	// CaretOffset is the explicit caret position after the edit, or
	// NoCaretOverride when the host's default placement applies.
	CaretOffset int
}

// NoCaretOverride marks a pending edit with no explicit caret position.
const NoCaretOverride = -1

// Outcome is the result of one newline indentation decision.
type Outcome struct {
	// Handled reports whether the engine took responsibility for the
	// keystroke. When false the host applies its default newline behavior
	// and the rest of the Outcome is meaningless.
	Handled bool

	// Edit is the adjusted pending insertion.
	Edit PendingEdit

	// LineRewrite is the dedent rewrite of the current line, set only on the
	// decrease branch. It must be applied together with Edit as one undoable
	// unit; Document.Apply does this atomically.
	LineRewrite *textdoc.TextEdit
}

// Declined is the outcome returned when neither pattern matched or the
// context is invalid; the host falls back to its default behavior.
func Declined() Outcome {
	return Outcome{}
}

// Edits returns the outcome's buffer changes in application order: the line
// rewrite (if any) followed by the pending insertion, both expressed against
// the pre-edit document so they can be applied as one atomic set. Empty for
// declined outcomes.
//
// Edit.Offset on the decrease branch tracks the host convention of updating
// the insertion point after the line rewrite has been applied; Edits maps it
// back to the pre-rewrite coordinate.
func (o Outcome) Edits() []textdoc.TextEdit {
	if !o.Handled {
		return nil
	}
	insertAt := o.Edit.Offset
	var edits []textdoc.TextEdit
	if r := o.LineRewrite; r != nil {
		edits = append(edits, *r)
		delta := len(r.NewText) - (r.EndOffset - r.StartOffset)
		if insertAt >= r.StartOffset+len(r.NewText) {
			insertAt -= delta
		}
	}
	edits = append(edits, textdoc.Insert(insertAt, o.Edit.Text))
	return edits
}
