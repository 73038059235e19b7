package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minNameWidth     = 8
	minLanguageWidth = 8
	minPatternWidth  = 16
	heavySeparator   = "="
	defaultTermWidth = 100
)

// StrategyRow represents a single strategy in the listing table.
type StrategyRow struct {
	Name        string
	Language    string
	Description string
	Increase    string
	Decrease    string
}

// TableFormatter formats strategy listings as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// Format renders the strategy rows as a table.
func (f *TableFormatter) Format(rows []StrategyRow) string {
	if len(rows) == 0 {
		return ""
	}

	nameWidth := minNameWidth
	langWidth := minLanguageWidth
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
		if len(row.Language) > langWidth {
			langWidth = len(row.Language)
		}
	}

	patternWidth := f.termWidth - nameWidth - langWidth - 3*tablePadding
	if patternWidth < minPatternWidth {
		patternWidth = minPatternWidth
	}

	var b strings.Builder
	pad := strings.Repeat(" ", tablePadding)

	header := fmt.Sprintf("%-*s%s%-*s%s%s", nameWidth, "STRATEGY", pad, langWidth, "LANGUAGE", pad, "PATTERNS")
	b.WriteString(f.styles.TableHeader.Render(header))
	b.WriteByte('\n')
	b.WriteString(f.styles.TableSeparator.Render(strings.Repeat(heavySeparator, f.termWidth)))
	b.WriteByte('\n')

	for _, row := range rows {
		increase := truncate("+ "+row.Increase, patternWidth)
		b.WriteString(fmt.Sprintf("%-*s%s%-*s%s%s\n",
			nameWidth, row.Name, pad, langWidth, row.Language, pad,
			f.styles.TableRow.Render(increase)))
		if row.Decrease != "" {
			decrease := truncate("- "+row.Decrease, patternWidth)
			b.WriteString(fmt.Sprintf("%-*s%s%-*s%s%s\n",
				nameWidth, "", pad, langWidth, "", pad,
				f.styles.Dim.Render(decrease)))
		}
	}

	b.WriteByte('\n')
	b.WriteString(f.styles.TableLegend.Render("+ increase pattern   - decrease pattern"))
	b.WriteByte('\n')

	return b.String()
}

// truncate shortens s to at most width characters, ending with an ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
