package config

// GenerateTemplate creates a starter configuration file with the defaults
// spelled out and a commented example of a user-defined strategy.
func GenerateTemplate() ([]byte, error) {
	const header = `# goindent configuration
# https://github.com/yaklabco/goindent
#
# indent_unit: "tab" or "space"
# indent_width: spaces per level when indent_unit is "space"
# tab_width: fallback width when inference finds no signal in the buffer`

	const footer = `
# User-defined strategies are registered alongside the built-ins and may
# shadow them. Example:
#
# strategies:
#   shell:
#     language: Shell
#     increase: '\b(?:then|do|else|\{)\s*$'
#     decrease: '^\s*(?:fi|done|esac|elif|else|\})\b'
#     push_closers: "}"
`

	data, err := Default().ToYAML()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(header)+len(data)+len(footer)+2)
	out = append(out, header...)
	out = append(out, '\n', '\n')
	out = append(out, data...)
	out = append(out, footer...)
	return out, nil
}
