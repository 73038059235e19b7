package textdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goindent/pkg/textdoc"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []textdoc.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []textdoc.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "line1\r\nline2\r\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 12, EndOffset: 14},
				{StartOffset: 14, NewlineStart: 14, EndOffset: 14},
			},
		},
		{
			name:    "blank lines",
			content: "a\n\nb",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 2, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := textdoc.BuildLines([]byte(testCase.content))
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestLineOfOffset(t *testing.T) {
	t.Parallel()

	doc := textdoc.NewString("foo\nbar\nbaz")

	tests := []struct {
		name     string
		offset   int
		expected int
		wantErr  bool
	}{
		{name: "start of document", offset: 0, expected: 0},
		{name: "inside first line", offset: 2, expected: 0},
		{name: "on newline", offset: 3, expected: 0},
		{name: "start of second line", offset: 4, expected: 1},
		{name: "inside last line", offset: 9, expected: 2},
		{name: "end of document maps to last line", offset: 11, expected: 2},
		{name: "negative offset", offset: -1, wantErr: true},
		{name: "past end", offset: 12, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := doc.LineOfOffset(testCase.offset)
			if testCase.wantErr {
				require.Error(t, err)
				var rangeErr *textdoc.RangeError
				assert.ErrorAs(t, err, &rangeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestLineOfOffsetEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := textdoc.NewString("")
	_, err := doc.LineOfOffset(0)
	require.Error(t, err)
}

func TestLineText(t *testing.T) {
	t.Parallel()

	doc := textdoc.NewString("foo\r\nbar\nbaz")

	tests := []struct {
		line     int
		expected string
	}{
		{0, "foo"},
		{1, "bar"},
		{2, "baz"},
	}

	for _, testCase := range tests {
		got, err := doc.LineText(testCase.line)
		require.NoError(t, err)
		assert.Equal(t, testCase.expected, got)
	}

	_, err := doc.LineText(3)
	require.Error(t, err)
	_, err = doc.LineText(-1)
	require.Error(t, err)
}

func TestTextRange(t *testing.T) {
	t.Parallel()

	doc := textdoc.NewString("hello world")

	got, err := doc.TextRange(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = doc.TextRange(6, 11)
	require.NoError(t, err)
	assert.Equal(t, "world", got)

	got, err = doc.TextRange(3, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = doc.TextRange(-1, 5)
	require.Error(t, err)
	_, err = doc.TextRange(5, 12)
	require.Error(t, err)
	_, err = doc.TextRange(5, 2)
	require.Error(t, err)
}

func TestLeadingWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		line     int
		expected string
	}{
		{name: "spaces", content: "    foo", line: 0, expected: "    "},
		{name: "tabs", content: "\t\tfoo", line: 0, expected: "\t\t"},
		{name: "mixed tab then spaces", content: "\t  foo", line: 0, expected: "\t  "},
		{name: "no indent", content: "foo", line: 0, expected: ""},
		{name: "whitespace only line", content: "   \nfoo", line: 0, expected: "   "},
		{name: "second line", content: "a\n  b", line: 1, expected: "  "},
		{name: "indent stops at newline", content: "  \n  x", line: 0, expected: "  "},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := textdoc.NewString(testCase.content)
			got, err := doc.LeadingWhitespace(testCase.line)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	doc := textdoc.New([]byte("a\nb\n"))
	assert.Equal(t, 4, doc.Len())
	assert.Equal(t, 3, doc.LineCount())

	info, err := doc.Line(1)
	require.NoError(t, err)
	assert.Equal(t, textdoc.LineInfo{StartOffset: 2, NewlineStart: 3, EndOffset: 4}, info)
}
