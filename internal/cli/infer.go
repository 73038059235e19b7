package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/goindent/internal/logging"
	"github.com/yaklabco/goindent/pkg/indent"
	"github.com/yaklabco/goindent/pkg/textdoc"
)

type inferFlags struct {
	line int
}

func newInferCommand() *cobra.Command {
	flags := &inferFlags{}

	cmd := &cobra.Command{
		Use:   "infer FILE",
		Short: "Infer the tab width of a file",
		Long: `Infer the effective indent width of FILE by sampling the leading
whitespace of its lines, the same heuristic the engine uses to compute a
dedent. Falls back to the configured tab width when the file carries no
signal. FILE may be "-" for stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.line, "line", 0, "1-based line to scan backward from (default: last line)")

	return cmd
}

func runInfer(cmd *cobra.Command, path string, flags *inferFlags) error {
	logger := logging.NewInteractive()

	content, err := readInput(path)
	if err != nil {
		return err
	}
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	doc := textdoc.New(content)
	startLine := doc.LineCount() - 1
	if flags.line > 0 {
		startLine = flags.line - 1
	}

	width := indent.InferTabWidth(doc, startLine, cfg.TabWidth)
	logger.Info("inferred tab width",
		logging.FieldPath, path,
		logging.FieldTabWidth, width,
	)
	return nil
}
