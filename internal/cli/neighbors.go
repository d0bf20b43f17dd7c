package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// neighborsCommand creates the neighbors command.
func (c *CLI) neighborsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "neighbors WORD",
		Short: "List words one transformation away",
		Long: `List the dictionary words one transformation away from WORD.

A transformation inserts, deletes or substitutes one letter, or toggles a
trailing 's. With --all every candidate is listed, whether or not it is a
dictionary word.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			ix, err := c.loadIndex(word)
			if err != nil {
				return err
			}

			var out []string
			if all {
				out = ix.Transformer().Neighbors(word).Sorted()
			} else {
				out = ix.Transformer().DictionaryNeighbors(ix.Dictionary(), word)
			}
			loggerFromContext(cmd.Context()).Debug("neighbors", "word", word, "count", len(out), "all", all)

			w := cmd.OutOrStdout()
			for _, nb := range out {
				fmt.Fprintln(w, nb)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every candidate, not only dictionary words")
	return cmd
}
