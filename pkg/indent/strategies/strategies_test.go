package strategies_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goindent/pkg/indent"
	"github.com/yaklabco/goindent/pkg/indent/strategies"
)

func TestBracesPatterns(t *testing.T) {
	t.Parallel()

	strat := strategies.NewBracesStrategy()

	tests := []struct {
		name         string
		line         string
		wantIncrease bool
		wantDecrease bool
	}{
		{"open brace at end", "if (x) {", true, false},
		{"open bracket at end", "items = [", true, false},
		{"open paren at end", "call(", true, false},
		{"opener with trailing spaces", "func main() {  ", true, false},
		{"closing brace line", "}", false, true},
		{"indented closer", "    } else", false, true},
		{"closing bracket", "  ]", false, true},
		{"closing paren", ")", false, true},
		{"plain statement", "x := 1", false, false},
		{"opener mid-line", "f(a) + b", false, false},
		{"string ending in brace text", "s := `{`x", false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.wantIncrease, strat.IncreasePattern().MatchString(testCase.line), "increase")
			assert.Equal(t, testCase.wantDecrease, strat.DecreasePattern().MatchString(testCase.line), "decrease")
		})
	}
}

func TestBracesPushTrailingContent(t *testing.T) {
	t.Parallel()

	strat := strategies.NewBracesStrategy()

	assert.True(t, strat.ShouldPushTrailingContent("if (x) {", "}"))
	assert.True(t, strat.ShouldPushTrailingContent("a = [", "]"))
	assert.True(t, strat.ShouldPushTrailingContent("f(", ")"))
	assert.True(t, strat.ShouldPushTrailingContent("if (x) {", "  }"))
	assert.False(t, strat.ShouldPushTrailingContent("if (x) {", ""))
	assert.False(t, strat.ShouldPushTrailingContent("if (x) {", "body"))
	assert.False(t, strat.ShouldPushTrailingContent("if (x) {", "   "))
}

func TestCSSPatterns(t *testing.T) {
	t.Parallel()

	strat := strategies.NewCSSStrategy()

	assert.True(t, strat.IncreasePattern().MatchString(".selector {"))
	assert.True(t, strat.IncreasePattern().MatchString("@media screen {  "))
	assert.False(t, strat.IncreasePattern().MatchString("color: red;"))

	assert.True(t, strat.DecreasePattern().MatchString("}"))
	assert.True(t, strat.DecreasePattern().MatchString("  }"))
	assert.False(t, strat.DecreasePattern().MatchString("color: red; }"))

	assert.True(t, strat.ShouldPushTrailingContent(".a {", "}"))
	assert.False(t, strat.ShouldPushTrailingContent(".a {", "]"))
}

func TestXMLPatterns(t *testing.T) {
	t.Parallel()

	strat := strategies.NewXMLStrategy()

	tests := []struct {
		name         string
		line         string
		wantIncrease bool
		wantDecrease bool
	}{
		{"open tag", "<div>", true, false},
		{"open tag with attributes", `<div class="wide">`, true, false},
		{"nested open tag at end", "  <body>", true, false},
		{"self-closing tag", "<br/>", false, false},
		{"closing tag line", "</div>", false, true},
		{"indented closing tag", "  </body>", false, true},
		{"xml declaration", `<?xml version="1.0"?>`, false, false},
		{"plain text", "some text", false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.wantIncrease, strat.IncreasePattern().MatchString(testCase.line), "increase")
			assert.Equal(t, testCase.wantDecrease, strat.DecreasePattern().MatchString(testCase.line), "decrease")
		})
	}

	assert.True(t, strat.ShouldPushTrailingContent("<div>", "</div>"))
	assert.False(t, strat.ShouldPushTrailingContent("<div>", "<span>"))
	assert.False(t, strat.ShouldPushTrailingContent("<div>", ""))
}

func TestRubyPatterns(t *testing.T) {
	t.Parallel()

	strat := strategies.NewRubyStrategy()

	tests := []struct {
		name         string
		line         string
		wantIncrease bool
		wantDecrease bool
	}{
		{"class definition", "class Foo", true, false},
		{"method definition", "def bar(x)", true, false},
		{"module", "module M", true, false},
		{"if statement", "if x > 1", true, false},
		{"unless", "unless done", true, false},
		{"case", "case value", true, false},
		{"begin", "begin", true, false},
		{"block with do", "items.each do", true, false},
		{"block with do and params", "items.each do |item|", true, false},
		{"brace block opener", "items.map {", true, false},
		{"end keyword", "end", false, true},
		{"indented end", "  end", false, true},
		{"else", "else", false, true},
		{"elsif", "elsif x < 2", false, true},
		{"when", "when :sym", false, true},
		{"rescue", "rescue StandardError => e", false, true},
		{"ensure", "ensure", false, true},
		{"plain assignment", "x = 1", false, false},
		{"identifier containing end", "ending = 1", false, false},
		{"one-line if with semicolon", "if x; y; end", false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.wantIncrease, strat.IncreasePattern().MatchString(testCase.line), "increase")
			assert.Equal(t, testCase.wantDecrease, strat.DecreasePattern().MatchString(testCase.line), "decrease")
		})
	}

	assert.True(t, strat.ShouldPushTrailingContent("h = {", "}"))
	assert.False(t, strat.ShouldPushTrailingContent("f(", ")"))
}

func TestPythonPatterns(t *testing.T) {
	t.Parallel()

	strat := strategies.NewPythonStrategy()

	assert.True(t, strat.IncreasePattern().MatchString("def f():"))
	assert.True(t, strat.IncreasePattern().MatchString("if x:  "))
	assert.True(t, strat.IncreasePattern().MatchString("class C:"))
	assert.False(t, strat.IncreasePattern().MatchString("x = 1"))
	assert.False(t, strat.IncreasePattern().MatchString("d = {'a': 1}"))

	// Python blocks end by dedent, not by token.
	assert.Nil(t, strat.DecreasePattern())
	assert.False(t, strat.ShouldPushTrailingContent("def f():", "pass"))
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := indent.NewRegistry()
	strategies.RegisterAll(registry)

	assert.Equal(t, []string{"braces", "css", "python", "ruby", "xml"}, registry.Names())
}

func TestRegisterLanguageAliases(t *testing.T) {
	t.Parallel()

	registry := indent.NewRegistry()
	strategies.RegisterAll(registry)
	strategies.RegisterLanguageAliases(registry)

	tests := []struct {
		alias    string
		expected string
	}{
		{"go", "braces"},
		{"java", "braces"},
		{"rust", "braces"},
		{"json", "braces"},
		{"scss", "css"},
		{"less", "css"},
		{"html", "xml"},
		{"svg", "xml"},
	}

	for _, testCase := range tests {
		s, ok := registry.Get(testCase.alias)
		require.True(t, ok, "alias %q", testCase.alias)
		assert.Equal(t, testCase.expected, s.Name(), "alias %q", testCase.alias)
	}
}

func TestDefaultRegistryPopulated(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"braces", "css", "xml", "ruby", "python"} {
		_, ok := indent.DefaultRegistry.Get(name)
		assert.True(t, ok, "built-in %q missing from default registry", name)
	}
}
