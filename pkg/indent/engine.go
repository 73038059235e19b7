package indent

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/goindent/pkg/textdoc"
)

// Engine binds a strategy and the host's indentation preferences into the
// per-keystroke entry point. Auto-indentation is best effort: document access
// failures are logged and converted into a declined outcome so the host's
// edit pipeline never sees an error from this path.
type Engine struct {
	strategy Strategy
	opts     Options
	logger   *log.Logger
}

// NewEngine creates an Engine for the given strategy and options.
// A nil logger falls back to the charmbracelet/log package default.
func NewEngine(strat Strategy, opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		strategy: strat,
		opts:     opts.withDefaults(),
		logger:   logger,
	}
}

// Strategy returns the engine's strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Options returns the engine's effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// OnNewline decides the indentation for a newline about to be inserted at
// cursorOffset. Failures decline rather than propagate.
func (e *Engine) OnNewline(doc *textdoc.Document, cursorOffset int, newline string) Outcome {
	outcome, err := Decide(doc, e.strategy, cursorOffset, newline, e.opts)
	if err != nil {
		e.logger.Error("auto-indent declined",
			"strategy", e.strategy.Name(),
			"offset", cursorOffset,
			"error", err)
		return Declined()
	}
	return outcome
}

// ApplyOutcome applies a handled outcome's edits to the document as one
// atomic application and returns the new document together with the resolved
// caret offset in it. Declined outcomes return the document unchanged with a
// caret of NoCaretOverride.
func ApplyOutcome(doc *textdoc.Document, outcome Outcome) (*textdoc.Document, int, error) {
	if !outcome.Handled {
		return doc, NoCaretOverride, nil
	}
	applied, err := doc.Apply(outcome.Edits())
	if err != nil {
		return nil, 0, err
	}
	return applied, ResolveCaret(outcome), nil
}

// ResolveCaret returns the caret offset in the post-edit document implied by
// a handled outcome: the explicit override when set, otherwise the end of the
// inserted text. Edit.Offset already accounts for any line rewrite, so no
// further adjustment applies.
func ResolveCaret(outcome Outcome) int {
	if !outcome.Handled {
		return NoCaretOverride
	}
	if outcome.Edit.CaretOffset != NoCaretOverride {
		return outcome.Edit.CaretOffset
	}
	return outcome.Edit.Offset + len(outcome.Edit.Text)
}
