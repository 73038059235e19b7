package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goindent/internal/logging"
	"github.com/yaklabco/goindent/internal/ui/pretty"
	"github.com/yaklabco/goindent/pkg/indent"
	"github.com/yaklabco/goindent/pkg/textdoc"
)

type indentFlags struct {
	line     int
	col      int
	offset   int
	strategy string
	explain  bool
	crlf     bool
}

func newIndentCommand() *cobra.Command {
	flags := &indentFlags{}

	cmd := &cobra.Command{
		Use:   "indent FILE",
		Short: "Simulate a newline insertion and print the indented result",
		Long:  indentLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndent(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.line, "line", 0, "1-based line of the cursor (default: last line)")
	cmd.Flags().IntVar(&flags.col, "col", 0, "1-based column of the cursor (default: end of line)")
	cmd.Flags().IntVar(&flags.offset, "offset", -1, "byte offset of the cursor (overrides --line/--col)")
	cmd.Flags().StringVarP(&flags.strategy, "strategy", "s", "", "strategy name (default: detect from file)")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "describe the decision instead of printing the buffer")
	cmd.Flags().BoolVar(&flags.crlf, "crlf", false, "insert \\r\\n instead of \\n")

	return cmd
}

const indentLongDescription = `Simulate pressing Enter at a position in FILE and print the resulting
buffer. The position defaults to the end of the last line; --line/--col or
--offset select another one. FILE may be "-" for stdin.

Examples:
  goindent indent main.go --line 3               # Enter at end of line 3
  goindent indent style.css --line 1 --col 12    # Enter mid-line
  goindent indent app.rb --explain               # describe the decision
  goindent indent conf.xml -s xml --offset 42    # force a strategy`

func runIndent(cmd *cobra.Command, path string, flags *indentFlags) error {
	logger := logging.Default()

	content, err := readInput(path)
	if err != nil {
		return err
	}

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	strat, err := resolveStrategy(registry, cfg, flags.strategy, path, content)
	if err != nil {
		return err
	}

	doc := textdoc.New(content)
	cursor, err := resolveCursor(doc, flags)
	if err != nil {
		return err
	}

	newline := "\n"
	if flags.crlf {
		newline = "\r\n"
	}

	engine := indent.NewEngine(strat, indent.Options{
		Unit:     cfg.Unit(),
		TabWidth: cfg.TabWidth,
	}, logger)

	outcome := engine.OnNewline(doc, cursor, newline)
	logger.Debug("decision",
		logging.FieldStrategy, strat.Name(),
		logging.FieldOffset, cursor,
		logging.FieldHandled, outcome.Handled,
	)

	if flags.explain {
		colorMode, _ := cmd.Flags().GetString("color")
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
		formatter := pretty.NewDecisionFormatter(styles)
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(strat.Name(), outcome))
		return nil
	}

	// A declined outcome falls back to a plain newline, like a host editor
	// with no indent support.
	if !outcome.Handled {
		outcome = indent.Outcome{
			Handled: true,
			Edit: indent.PendingEdit{
				Offset:      cursor,
				Text:        newline,
				ShiftsCaret: true,
				CaretOffset: indent.NoCaretOverride,
			},
		}
	}

	applied, _, err := indent.ApplyOutcome(doc, outcome)
	if err != nil {
		return fmt.Errorf("apply edits: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(applied.Content); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// resolveCursor maps the position flags onto a byte offset in the document.
func resolveCursor(doc *textdoc.Document, flags *indentFlags) (int, error) {
	if flags.offset >= 0 {
		if flags.offset > doc.Len() {
			return 0, fmt.Errorf("offset %d beyond end of input (%d bytes)", flags.offset, doc.Len())
		}
		return flags.offset, nil
	}

	lineNum := doc.LineCount() - 1
	if flags.line > 0 {
		lineNum = flags.line - 1
	}
	line, err := doc.Line(lineNum)
	if err != nil {
		return 0, fmt.Errorf("line %d beyond end of input", flags.line)
	}

	// Default to the end of the line's content.
	cursor := line.NewlineStart
	if flags.col > 0 {
		cursor = line.StartOffset + flags.col - 1
		if cursor > line.NewlineStart {
			cursor = line.NewlineStart
		}
	}
	return cursor, nil
}
