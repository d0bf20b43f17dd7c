package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/wordladder/pkg/graph"
	"github.com/matzehuels/wordladder/pkg/render"
	"github.com/matzehuels/wordladder/pkg/render/nodelink"
)

// RenderGraph produces the requested artifacts for g without caching.
// SVG is rendered at most once and shared by the PDF and PNG conversions.
func RenderGraph(ctx context.Context, g graph.Graph, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed, Highlight: opts.Highlight})
	out := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = nodelink.RenderSVG(ctx, dot)
		return svg, err
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var (
			data []byte
			err  error
		)
		switch format {
		case render.FormatDOT:
			data = []byte(dot)
		case render.FormatJSON:
			data, err = graph.MarshalGraph(g)
		case render.FormatSVG:
			data, err = svgOnce()
		case render.FormatPDF:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case render.FormatPNG:
			if data, err = svgOnce(); err == nil {
				data, err = render.ToPNG(ctx, data, opts.Scale)
			}
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		out[format] = data
	}
	return out, nil
}
