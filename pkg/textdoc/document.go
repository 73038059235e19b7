// Package textdoc provides the read-only document model the indent engine
// works against: file content, a line index, and offset-based text edits.
package textdoc

import "sort"

// Document is an immutable snapshot of a text buffer.
type Document struct {
	// Content is the full buffer bytes.
	Content []byte

	// Lines contains metadata for each line in the buffer.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a document.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of buffer).
	EndOffset int
}

// New creates a Document from content and builds its line index.
func New(content []byte) *Document {
	return &Document{
		Content: content,
		Lines:   BuildLines(content),
	}
}

// NewString creates a Document from string content.
func NewString(content string) *Document {
	return New([]byte(content))
}

// BuildLines constructs line metadata from buffer content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// Len returns the content length in bytes.
func (d *Document) Len() int {
	return len(d.Content)
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineOfOffset returns the 0-based line number containing the byte offset.
// An offset equal to the content length maps to the last line.
func (d *Document) LineOfOffset(offset int) (int, error) {
	if offset < 0 || offset > len(d.Content) || len(d.Lines) == 0 {
		return 0, &RangeError{Op: "line-of-offset", Offset: offset, Length: len(d.Content)}
	}
	if offset == len(d.Content) {
		return len(d.Lines) - 1, nil
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}
	return lineIdx, nil
}

// Line returns the metadata for the 0-based line number.
func (d *Document) Line(lineNum int) (LineInfo, error) {
	if lineNum < 0 || lineNum >= len(d.Lines) {
		return LineInfo{}, &RangeError{Op: "line", Line: lineNum, Length: len(d.Lines)}
	}
	return d.Lines[lineNum], nil
}

// TextRange returns the content bytes in [start, end) as a string.
func (d *Document) TextRange(start, end int) (string, error) {
	if start < 0 || end < start || end > len(d.Content) {
		return "", &RangeError{Op: "text-range", Offset: start, Length: len(d.Content)}
	}
	return string(d.Content[start:end]), nil
}

// LineText returns the content of the line without its newline characters.
func (d *Document) LineText(lineNum int) (string, error) {
	info, err := d.Line(lineNum)
	if err != nil {
		return "", err
	}
	return string(d.Content[info.StartOffset:info.NewlineStart]), nil
}

// LeadingWhitespace returns the leading whitespace of the line, scanning
// from the line start while characters are spaces or tabs.
func (d *Document) LeadingWhitespace(lineNum int) (string, error) {
	info, err := d.Line(lineNum)
	if err != nil {
		return "", err
	}
	end := info.StartOffset
	for end < info.NewlineStart && isIndentChar(d.Content[end]) {
		end++
	}
	return string(d.Content[info.StartOffset:end]), nil
}

func isIndentChar(c byte) bool {
	return c == ' ' || c == '\t'
}
