package textdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goindent/pkg/textdoc"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []textdoc.TextEdit
		contentLen int
		wantErr    bool
	}{
		{
			name:       "empty edits",
			edits:      nil,
			contentLen: 10,
		},
		{
			name:       "valid insert",
			edits:      []textdoc.TextEdit{textdoc.Insert(5, "x")},
			contentLen: 10,
		},
		{
			name:       "valid replace at boundary",
			edits:      []textdoc.TextEdit{textdoc.Replace(0, 10, "y")},
			contentLen: 10,
		},
		{
			name:       "negative start",
			edits:      []textdoc.TextEdit{textdoc.Insert(-1, "x")},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end before start",
			edits:      []textdoc.TextEdit{{StartOffset: 5, EndOffset: 2, NewText: "x"}},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name:       "end past content",
			edits:      []textdoc.TextEdit{textdoc.Replace(5, 11, "x")},
			contentLen: 10,
			wantErr:    true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := textdoc.ValidateEdits(testCase.edits, testCase.contentLen)
			if testCase.wantErr {
				require.Error(t, err)
				var validationErr *textdoc.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSortEdits(t *testing.T) {
	t.Parallel()

	edits := []textdoc.TextEdit{
		textdoc.Replace(10, 12, "c"),
		textdoc.Insert(2, "a"),
		textdoc.Replace(2, 5, "b"),
	}
	textdoc.SortEdits(edits)

	assert.Equal(t, 2, edits[0].StartOffset)
	assert.Equal(t, 2, edits[0].EndOffset)
	assert.Equal(t, 5, edits[1].EndOffset)
	assert.Equal(t, 10, edits[2].StartOffset)
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	t.Run("disjoint edits", func(t *testing.T) {
		t.Parallel()

		edits := []textdoc.TextEdit{
			textdoc.Replace(0, 3, "x"),
			textdoc.Replace(3, 6, "y"),
		}
		assert.NoError(t, textdoc.DetectConflicts(edits))
	})

	t.Run("overlapping edits", func(t *testing.T) {
		t.Parallel()

		edits := []textdoc.TextEdit{
			textdoc.Replace(0, 5, "x"),
			textdoc.Replace(4, 8, "y"),
		}
		err := textdoc.DetectConflicts(edits)
		require.Error(t, err)
		var conflictErr *textdoc.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
	})

	t.Run("insert inside replaced range", func(t *testing.T) {
		t.Parallel()

		edits := []textdoc.TextEdit{
			textdoc.Replace(0, 5, "x"),
			textdoc.Insert(2, "y"),
		}
		textdoc.SortEdits(edits)
		assert.Error(t, textdoc.DetectConflicts(edits))
	})
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	original := []textdoc.TextEdit{
		textdoc.Insert(8, "b"),
		textdoc.Replace(0, 4, "a"),
	}
	prepared, err := textdoc.PrepareEdits(original, 10)
	require.NoError(t, err)

	require.Len(t, prepared, 2)
	assert.Equal(t, 0, prepared[0].StartOffset)
	assert.Equal(t, 8, prepared[1].StartOffset)
	// The input slice is left in its original order.
	assert.Equal(t, 8, original[0].StartOffset)
}

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		edits    []textdoc.TextEdit
		expected string
	}{
		{
			name:     "no edits",
			content:  "hello",
			edits:    nil,
			expected: "hello",
		},
		{
			name:     "insert at start",
			content:  "world",
			edits:    []textdoc.TextEdit{textdoc.Insert(0, "hello ")},
			expected: "hello world",
		},
		{
			name:     "insert at end",
			content:  "hello",
			edits:    []textdoc.TextEdit{textdoc.Insert(5, " world")},
			expected: "hello world",
		},
		{
			name:     "replace middle",
			content:  "one two three",
			edits:    []textdoc.TextEdit{textdoc.Replace(4, 7, "TWO")},
			expected: "one TWO three",
		},
		{
			name:     "delete range",
			content:  "one two three",
			edits:    []textdoc.TextEdit{textdoc.Replace(3, 7, "")},
			expected: "one three",
		},
		{
			name:    "rewrite line then insert after it",
			content: "  body\n    }",
			edits: []textdoc.TextEdit{
				textdoc.Replace(7, 12, "  }"),
				textdoc.Insert(12, "\n  "),
			},
			expected: "  body\n  }\n  ",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			prepared, err := textdoc.PrepareEdits(testCase.edits, len(testCase.content))
			require.NoError(t, err)

			got := textdoc.ApplyEdits([]byte(testCase.content), prepared)
			assert.Equal(t, testCase.expected, string(got))
		})
	}
}

func TestDocumentApply(t *testing.T) {
	t.Parallel()

	doc := textdoc.NewString("foo {\nbar")
	applied, err := doc.Apply([]textdoc.TextEdit{textdoc.Insert(5, "\n\t")})
	require.NoError(t, err)

	assert.Equal(t, "foo {\n\t\nbar", string(applied.Content))
	assert.Equal(t, 3, applied.LineCount())
	// The original document and its line index are untouched.
	assert.Equal(t, "foo {\nbar", string(doc.Content))
	assert.Equal(t, 2, doc.LineCount())
}

func TestDocumentApplyRejectsInvalidEdits(t *testing.T) {
	t.Parallel()

	doc := textdoc.NewString("short")
	_, err := doc.Apply([]textdoc.TextEdit{textdoc.Insert(99, "x")})
	require.Error(t, err)

	_, err = doc.Apply([]textdoc.TextEdit{
		textdoc.Replace(0, 4, "a"),
		textdoc.Replace(2, 5, "b"),
	})
	require.Error(t, err)
}
