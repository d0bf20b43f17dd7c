package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/ladder"
)

type distanceOutput struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Distance ladder.Distance `json:"distance"`
	Path     []string        `json:"path,omitempty"`
}

// distanceCommand creates the distance command.
func (c *CLI) distanceCommand() *cobra.Command {
	var (
		withPath bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "distance FROM TO",
		Short: "Print the fewest transformations between two words",
		Long: `Print the fewest transformations turning FROM into TO, using only
dictionary words along the way. Unreachable pairs print ∞ (null in JSON).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			ix, err := c.loadIndex(from, to)
			if err != nil {
				return err
			}

			out := distanceOutput{From: from, To: to}
			if withPath {
				out.Path, out.Distance = ix.ShortestPath(from, to)
			} else {
				out.Distance = ix.Distance(from, to)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprintf(w, "%s %s %s: %s\n", from, iconArrow, to, styleNumber.Render(out.Distance.String()))
			if len(out.Path) > 0 {
				fmt.Fprintln(w, strings.Join(out.Path, " -> "))
			}
			if !out.Distance.Reachable() {
				for _, word := range []string{from, to} {
					if !ix.Dictionary().Contains(word) {
						c.ui.warn("%q is not in the dictionary", word)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withPath, "path", "p", false, "also print one shortest ladder")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
