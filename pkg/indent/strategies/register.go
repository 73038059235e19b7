package strategies

import "github.com/yaklabco/goindent/pkg/indent"

// RegisterAll registers all built-in strategies with the given registry.
func RegisterAll(registry *indent.Registry) {
	registry.Register(NewBracesStrategy())
	registry.Register(NewCSSStrategy())
	registry.Register(NewXMLStrategy())
	registry.Register(NewRubyStrategy())
	registry.Register(NewPythonStrategy())
}

// RegisterLanguageAliases maps common language names onto the strategy that
// covers them, so hosts and detection can look strategies up by language.
func RegisterLanguageAliases(registry *indent.Registry) {
	for _, lang := range []string{"c", "c++", "c#", "go", "java", "javascript", "typescript", "rust", "json", "php", "swift", "kotlin"} {
		registry.RegisterAlias(lang, "braces")
	}
	registry.RegisterAlias("scss", "css")
	registry.RegisterAlias("less", "css")
	registry.RegisterAlias("html", "xml")
	registry.RegisterAlias("xhtml", "xml")
	registry.RegisterAlias("svg", "xml")
}

// init registers all built-in strategies with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic strategy registration
func init() {
	RegisterAll(indent.DefaultRegistry)
	RegisterLanguageAliases(indent.DefaultRegistry)
}
