package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/observability"
	"github.com/matzehuels/cellkit/pkg/render/cells"
	"github.com/matzehuels/cellkit/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, root *layout.Block, viewport geometry.Size, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, root, viewport, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, root *layout.Block, viewport geometry.Size, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var grid *cells.Grid
	var dot string
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatText, FormatANSI:
			if grid == nil {
				grid = cells.Paint(root, viewport, cells.Options{Outline: opts.Outline})
			}
			if format == FormatText {
				data = []byte(grid.String() + "\n")
			} else {
				data = []byte(grid.Render(true) + "\n")
			}
		case FormatJSON:
			data, err = json.MarshalIndent(root, "", "  ")
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = nodelink.ToDOT(root, nodelink.Options{Detailed: opts.Detailed})
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = nodelink.RenderSVG(ctx, dot)
			}
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
