package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
)

// Layout runs one engine pass over root inside viewport.
// The engine logs through logger; nil discards.
func Layout(ctx context.Context, root layout.Node, viewport geometry.Size, logger *log.Logger) (*layout.Block, error) {
	e := layout.Engine{Logger: logger}
	return e.Layout(ctx, root, viewport)
}
