package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Decision fields.
	FieldStrategy = "strategy"
	FieldOffset   = "offset"
	FieldHandled  = "handled"

	// Configuration fields.
	FieldTabWidth = "tab_width"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
