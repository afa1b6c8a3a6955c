package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete decode → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Decode
	decodeStart := time.Now()
	d, err := Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.DocumentHash = d.Hash
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.NodeCount = layout.Count(d.Root)

	r.Logger.Info("decoded document",
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.DecodeTime)

	// Stage 2: Layout
	result.Viewport = opts.Viewport(d.Document.ViewportOr(geometry.Size{}))
	layoutStart := time.Now()
	root, err := r.Layout(ctx, d.Root, result.Viewport)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Root = root
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.BlockCount = root.Count()

	r.Logger.Info("computed layout",
		"viewport", result.Viewport,
		"blocks", result.Stats.BlockCount,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, root, result.Viewport, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Decode is a convenience wrapper that applies the runner's logger.
func (r *Runner) Decode(ctx context.Context, opts Options) (*Decoded, error) {
	r.applyLogger(&opts)
	return Decode(ctx, opts)
}

// Layout runs one pass with the runner's logger.
func (r *Runner) Layout(ctx context.Context, root layout.Node, viewport geometry.Size) (*layout.Block, error) {
	return Layout(ctx, root, viewport, r.Logger)
}

// Render is a convenience wrapper that applies the runner's logger.
func (r *Runner) Render(ctx context.Context, root *layout.Block, viewport geometry.Size, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	return Render(ctx, root, viewport, opts)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
