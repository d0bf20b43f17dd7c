package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/graph"
	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/pipeline"
)

// matrixCommand creates the matrix command.
func (c *CLI) matrixCommand() *cobra.Command {
	var (
		limit   int
		workers int
		output  string
		asJSON  bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "matrix [WORD...]",
		Short: "Compute pairwise distances",
		Long: `Compute the distance between every pair of WORDs, or every dictionary
word when none are given.

The table caps distances at --cap, printing unreachable pairs as the cap,
and lists disconnected pairs and direct one-step connections afterwards.
--json writes the raw matrix with null for unreachable pairs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("cap") {
				limit = c.cfg().Matrix.Cap
			}
			if !cmd.Flags().Changed("workers") {
				workers = c.cfg().Matrix.Workers
			}

			ix, err := c.loadIndex(args...)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			var words []string
			if len(args) > 0 {
				words = args
			}
			prog := newProgress(loggerFromContext(ctx))
			m, hit, err := runner.MatrixWithCacheInfo(ctx, ix, words, pipeline.Options{Workers: workers, Refresh: refresh})
			if err != nil {
				return err
			}
			prog.done("Computed matrix", "words", len(m.Words), "cached", hit)

			var w io.WriteCloser = nopCloser{cmd.OutOrStdout()}
			if output != "" {
				if w, err = outputFile(output); err != nil {
					return err
				}
			}
			defer w.Close()

			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(graph.FromMatrix(m))
			}

			fmt.Fprint(w, formatMatrix(m, limit))
			if output == "" || output == "-" {
				c.ui.stats(len(m.Words), len(m.Adjacent()), hit)
				c.ui.pairs("Disconnected", m.Disconnected())
				c.ui.pairs("Connected", m.Adjacent())
			} else {
				c.ui.file(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "cap", ladder.DefaultCap, "largest distance shown; unreachable pairs print as the cap")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel rows (default GOMAXPROCS)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the raw matrix as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")
	return cmd
}

// formatMatrix renders m as a tab-separated table with capped values.
func formatMatrix(m *ladder.Matrix, limit int) string {
	var b strings.Builder
	b.WriteString("\t" + strings.Join(m.Words, "\t") + "\n")
	for i, row := range m.Capped(limit) {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		b.WriteString(m.Words[i] + "\t" + strings.Join(cells, "\t") + "\n")
	}
	return b.String()
}
