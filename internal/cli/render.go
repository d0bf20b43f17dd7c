package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordladder/pkg/pipeline"
	"github.com/matzehuels/wordladder/pkg/render"
)

// defaultRenderBase is the output base path when --output is not given.
const defaultRenderBase = appName

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path
	formats   []string // svg, dot, json, pdf, png
	detailed  bool     // component and degree in node labels
	highlight []string // ladder drawn over the graph
	scale     float64  // PNG resolution multiplier
	refresh   bool     // bypass cached graph and artifacts
}

// renderCommand creates the render command for drawing the word graph.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the word graph to SVG, DOT, JSON, PDF or PNG",
		Long: `Render the dictionary's word graph. Each format is written to
<output>.<format>; with a single format, --output may name the file directly.

--highlight takes a ladder (for example the output of "distance --path")
and draws its edges on top of the graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (default \""+defaultRenderBase+"\")")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json, pdf, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show component and degree in node labels")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "ladder to highlight (comma-separated words)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// basePath strips a known format extension from output, or returns the
// default base when output is empty.
func basePath(output string) string {
	if output == "" {
		return defaultRenderBase
	}
	ext := filepath.Ext(output)
	if slices.Contains(render.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	ix, err := c.loadIndex(opts.highlight...)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := c.ui.startSpinner(ctx, "Rendering word graph...")
	result, err := runner.Execute(ctx, ix, pipeline.Options{
		Formats:   opts.formats,
		Detailed:  opts.detailed,
		Highlight: opts.highlight,
		Scale:     opts.scale,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, opts.formats)
	var written []string
	for _, f := range opts.formats {
		path := paths[f]
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debugf("Generated %s: %d bytes", path, len(result.Artifacts[f]))
		written = append(written, path)
	}

	c.ui.success("Rendered %d components", result.Stats.Components)
	c.ui.stats(result.Stats.Words, result.Stats.Edges, result.CacheInfo.GraphHit && result.CacheInfo.RenderHit)
	for _, p := range written {
		c.ui.file(p)
	}
	if len(opts.highlight) == 0 {
		c.ui.newline()
		c.ui.nextStep("Highlight a ladder", appName+" render --highlight WORD,WORD")
	}
	return nil
}
