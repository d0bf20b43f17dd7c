package cli

import (
	"github.com/spf13/cobra"

	wio "github.com/matzehuels/wordladder/pkg/io"
)

// wordsCommand creates the words command.
func (c *CLI) wordsCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the loaded dictionary",
		Long: `Print the loaded dictionary, normalized and sorted.

With -o the words are written to a file whose extension (.txt, .json,
.toml) picks the format. Otherwise --format selects it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := c.loadDictionary()
			if err != nil {
				return err
			}
			if output != "" {
				if err := wio.ExportWords(dict, output); err != nil {
					return err
				}
				c.ui.success("Exported %d words", dict.Len())
				c.ui.file(output)
				return nil
			}
			return wio.WriteWords(dict, cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format from extension)")
	cmd.Flags().StringVarP(&format, "format", "f", wio.FormatText, "output format: text, json, toml")
	return cmd
}
