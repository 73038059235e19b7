package textdoc_test

import (
	"testing"

	"github.com/yaklabco/goindent/pkg/textdoc"
)

func FuzzApplyEdits(f *testing.F) {
	// Add seed corpus.
	f.Add([]byte("hello"), 0, 5, "world")
	f.Add([]byte("hello world"), 5, 5, " beautiful")
	f.Add([]byte("abcdef"), 0, 0, "prefix")
	f.Add([]byte("abcdef"), 6, 6, "suffix")
	f.Add([]byte("abcdef"), 2, 4, "")
	f.Add([]byte("foo {\n}"), 5, 5, "\n\t")

	f.Fuzz(func(t *testing.T, content []byte, start, end int, newText string) {
		// Validate edit range.
		if start < 0 || end < start || end > len(content) {
			return // Invalid edit, skip.
		}

		edits := []textdoc.TextEdit{
			{StartOffset: start, EndOffset: end, NewText: newText},
		}

		// ApplyEdits should not panic.
		result := textdoc.ApplyEdits(content, edits)

		// Result should have expected length.
		expectedLen := len(content) - (end - start) + len(newText)
		if len(result) != expectedLen {
			t.Errorf("result length = %d, want %d", len(result), expectedLen)
		}

		// Verify content before edit is preserved.
		for i := range start {
			if result[i] != content[i] {
				t.Errorf("byte %d modified before edit: got %d, want %d", i, result[i], content[i])
				break
			}
		}

		// Verify new text is inserted.
		for i := range len(newText) {
			if result[start+i] != newText[i] {
				t.Errorf("new text byte %d wrong: got %d, want %d", i, result[start+i], newText[i])
				break
			}
		}

		// Verify content after edit is preserved.
		afterEditStart := start + len(newText)
		for i := end; i < len(content); i++ {
			resultIdx := afterEditStart + (i - end)
			if result[resultIdx] != content[i] {
				t.Errorf("byte %d modified after edit: got %d, want %d", i, result[resultIdx], content[i])
				break
			}
		}
	})
}

func FuzzBuildLines(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte("a\nb\nc\n"))
	f.Add([]byte("a\r\nb\r\n"))
	f.Add([]byte("\n\n\n"))
	f.Add([]byte("mixed\nendings\r\nhere"))

	f.Fuzz(func(t *testing.T, content []byte) {
		lines := textdoc.BuildLines(content)

		if len(content) == 0 {
			if len(lines) != 0 {
				t.Fatalf("empty content produced %d lines", len(lines))
			}
			return
		}

		if len(lines) == 0 {
			t.Fatal("non-empty content produced no lines")
		}

		// Lines must tile the content: contiguous, ordered, covering.
		if lines[0].StartOffset != 0 {
			t.Errorf("first line starts at %d, want 0", lines[0].StartOffset)
		}
		for i, line := range lines {
			if line.StartOffset > line.NewlineStart || line.NewlineStart > line.EndOffset {
				t.Errorf("line %d has inverted offsets: %+v", i, line)
			}
			if i > 0 && line.StartOffset != lines[i-1].EndOffset {
				t.Errorf("line %d start %d != previous end %d", i, line.StartOffset, lines[i-1].EndOffset)
			}
		}
		last := lines[len(lines)-1]
		if last.EndOffset != len(content) {
			t.Errorf("last line ends at %d, want %d", last.EndOffset, len(content))
		}

		// Every in-bounds offset resolves to the line that contains it.
		doc := textdoc.New(content)
		for offset := 0; offset <= len(content); offset++ {
			lineNum, err := doc.LineOfOffset(offset)
			if err != nil {
				t.Fatalf("offset %d: %v", offset, err)
			}
			line := lines[lineNum]
			if offset < len(content) && (offset < line.StartOffset || offset >= line.EndOffset) {
				t.Errorf("offset %d resolved to line %d [%d:%d)", offset, lineNum, line.StartOffset, line.EndOffset)
			}
		}
	})
}
