package textdoc

import "fmt"

// RangeError reports a document access with a stale or invalid position.
// It is the only error category the document model produces; callers treat
// it as recoverable and fall back to default behavior.
type RangeError struct {
	// Op names the failed operation (e.g., "line", "text-range").
	Op string

	// Offset is the requested byte offset, if the access was offset-based.
	Offset int

	// Line is the requested line number, if the access was line-based.
	Line int

	// Length is the relevant bound (content length or line count).
	Length int
}

func (e *RangeError) Error() string {
	if e.Op == "line" {
		return fmt.Sprintf("textdoc: %s: line %d out of range (0..%d)", e.Op, e.Line, e.Length-1)
	}
	return fmt.Sprintf("textdoc: %s: offset %d out of range (content length %d)", e.Op, e.Offset, e.Length)
}
