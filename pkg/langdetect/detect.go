// Package langdetect selects an indent strategy for a buffer.
// It uses go-enry to detect the programming language from the filename and
// content, then maps the language onto the built-in strategy that covers it.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Strategy name constants matching the built-in registry.
const (
	strategyBraces = "braces"
	strategyCSS    = "css"
	strategyXML    = "xml"
	strategyRuby   = "ruby"
	strategyPython = "python"
)

// DetectStrategy returns the name of the indent strategy for the given file.
// Detection tries the filename first (extension and well-known names), then
// the enry classifier over the supported languages. Unknown languages fall
// back to the braces strategy, which covers the largest language family.
func DetectStrategy(filename string, content []byte) string {
	if lang := enry.GetLanguage(filename, content); lang != "" {
		if s, ok := strategyForLanguage(lang); ok {
			return s
		}
	}

	if len(content) > 0 {
		candidates := []string{
			"Go", "Python", "Ruby", "JavaScript", "TypeScript",
			"Java", "C", "C++", "Rust", "CSS", "HTML", "XML", "JSON",
		}
		if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
			if s, ok := strategyForLanguage(lang); ok {
				return s
			}
		}
	}

	return strategyBraces
}

// strategyForLanguage maps an enry language name onto a strategy name.
func strategyForLanguage(lang string) (string, bool) {
	switch strings.ToLower(lang) {
	case "ruby":
		return strategyRuby, true
	case "python":
		return strategyPython, true
	case "css", "scss", "less", "sass":
		return strategyCSS, true
	case "xml", "html", "xhtml", "svg", "html+erb":
		return strategyXML, true
	case "go", "c", "c++", "c#", "java", "javascript", "typescript", "jsx", "tsx",
		"rust", "json", "php", "swift", "kotlin", "scala", "objective-c":
		return strategyBraces, true
	default:
		return "", false
	}
}
