package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/goindent/internal/ui/pretty"
	"github.com/yaklabco/goindent/pkg/indent"
)

type strategiesFlags struct {
	format string
}

const formatJSON = "json"

// strategyInfo represents a strategy in JSON output.
type strategyInfo struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description"`
	Increase    string `json:"increase"`
	Decrease    string `json:"decrease,omitempty"`
}

func newStrategiesCommand() *cobra.Command {
	flags := &strategiesFlags{}

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List available indent strategies",
		Long: `List all available indent strategies with their target language and the
increase/decrease patterns they match against the line before the cursor.
User-defined strategies from the configuration file are included.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}
			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			strategies := registry.Strategies()

			if flags.format == formatJSON {
				return outputStrategiesJSON(strategies)
			}

			colorMode, _ := cmd.Flags().GetString("color")
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
			formatter := pretty.NewTableFormatter(styles, termWidth())

			rows := make([]pretty.StrategyRow, 0, len(strategies))
			for _, s := range strategies {
				row := pretty.StrategyRow{
					Name:        s.Name(),
					Language:    s.Language(),
					Description: s.Description(),
					Increase:    s.IncreasePattern().String(),
				}
				if dec := s.DecreasePattern(); dec != nil {
					row.Decrease = dec.String()
				}
				rows = append(rows, row)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputStrategiesJSON outputs strategies as a JSON array.
func outputStrategiesJSON(strategies []indent.Strategy) error {
	infos := make([]strategyInfo, 0, len(strategies))
	for _, s := range strategies {
		info := strategyInfo{
			Name:        s.Name(),
			Language:    s.Language(),
			Description: s.Description(),
			Increase:    s.IncreasePattern().String(),
		}
		if dec := s.DecreasePattern(); dec != nil {
			info.Decrease = dec.String()
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding strategies: %w", err)
	}
	return nil
}

// termWidth returns the terminal width of stdout, or 0 when not a terminal.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
