package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/ladder"
)

// defaultPathDepth is the --depth default for the paths command.
const defaultPathDepth = 3

// pathsCommand creates the paths command.
func (c *CLI) pathsCommand() *cobra.Command {
	var (
		depth  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "paths START",
		Short: "Stream every shortest ladder from a word",
		Long: `Stream every shortest ladder from START to each reachable word, up to
--depth transformations.

Records are printed as they are found, indented by depth. A word is printed
again when another ladder of the same length turns up. With --json each
record is one JSON object per line.`,
		Example: `  wordladder paths cat --depth 2 --sample
  wordladder paths cart --depth 4 --sample --json | jq .word`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := args[0]
			if err := errors.ValidateDepth(depth, 0); err != nil {
				return err
			}
			ix, err := c.loadIndex(start)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			prog := newProgress(loggerFromContext(ctx))

			count := 0
			for rec := range ladder.FindPaths(ix.Dictionary(), ix.Transformer(), start, depth) {
				if err := ctx.Err(); err != nil {
					return err
				}
				count++
				if asJSON {
					if err := enc.Encode(rec); err != nil {
						return err
					}
					continue
				}
				writeRecord(w, rec)
			}
			prog.done("Found paths", "start", start, "records", count)
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "n", defaultPathDepth, "maximum ladder length")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON record per line")
	return cmd
}

// writeRecord prints rec indented by depth with its ladders joined by OR:
//
//	    cot (paths: cat -> cot)
func writeRecord(w io.Writer, rec ladder.PathRecord) {
	fmt.Fprintf(w, "%s%s (paths: %s)\n", strings.Repeat("  ", rec.Depth), rec.Word, formatPaths(rec.Paths))
}

func formatPaths(paths [][]string) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = strings.Join(p, " -> ")
	}
	return strings.Join(parts, " OR ")
}
