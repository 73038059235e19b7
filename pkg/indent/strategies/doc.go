// Package strategies provides the built-in indent strategies for goindent.
//
// Each strategy pairs an increase pattern with an optional decrease pattern
// and a push-trailing decision for its language family:
//
//   - braces: C-style languages with {}, [] and () blocks
//   - css: CSS and friends ({} blocks only)
//   - xml: XML and HTML open/close tags
//   - ruby: keyword-delimited blocks closed with "end"
//   - python: colon-suffixed suites (no dedent pattern; the host's
//     backspace-driven dedent applies instead)
//
// Importing this package registers all built-ins into indent.DefaultRegistry
// via init().
package strategies
