package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/pipeline"
)

// previewWords is how many words of a component the table shows.
const previewWords = 8

// componentsCommand creates the components command.
func (c *CLI) componentsCommand() *cobra.Command {
	var (
		interactive bool
		asJSON      bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Partition the dictionary into connected components",
		Long: `Partition the dictionary into groups of words that can reach each other.

Components are listed largest first. Results are cached per dictionary and
transformer settings; pass --refresh to recompute.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ix, err := c.loadIndex()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			var comps []ladder.Component
			var hit bool
			compute := func() error {
				comps, hit, err = runner.ComponentsWithCacheInfo(ctx, ix, pipeline.Options{Refresh: refresh})
				return err
			}
			if asJSON {
				err = compute()
			} else {
				spinner := c.ui.startSpinner(ctx, "Finding components...")
				err = compute()
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Count      int                `json:"count"`
					Components []ladder.Component `json:"components"`
				}{len(comps), comps})
			case interactive:
				_, err := tea.NewProgram(NewComponentListModel(comps), tea.WithContext(ctx)).Run()
				return err
			default:
				c.ui.success("%d component(s) over %d words", len(comps), ix.Dictionary().Len())
				c.ui.stats(ix.Dictionary().Len(), 0, hit)
				if len(comps) > 0 {
					fmt.Fprintln(w, componentsTable(comps))
				}
				return nil
			}
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse components interactively")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results")
	return cmd
}

// componentsTable renders a summary table of comps.
func componentsTable(comps []ladder.Component) string {
	rows := make([][]string, len(comps))
	for i, comp := range comps {
		rows[i] = []string{fmt.Sprint(i), fmt.Sprint(len(comp)), preview(comp, previewWords)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Size", "Words").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Render()
}

// preview joins the first n words, noting how many were left out.
func preview(comp ladder.Component, n int) string {
	if len(comp) <= n {
		return strings.Join(comp, ", ")
	}
	return fmt.Sprintf("%s, … (+%d)", strings.Join(comp[:n], ", "), len(comp)-n)
}
