package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/cellkit/pkg/cache"
	"github.com/matzehuels/cellkit/pkg/document"
	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/observability"
)

// Decoded is the output of the decode stage.
type Decoded struct {
	Document *document.Document
	Root     layout.Node
	Hash     string
}

// Decode reads the document named by opts and builds its node tree.
func Decode(ctx context.Context, opts Options) (*Decoded, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := opts.Path
	if len(opts.Source) > 0 {
		source = "<source>"
	}

	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, source)
	start := time.Now()

	d, err := decode(opts)
	nodes := 0
	if err == nil {
		nodes = layout.Count(d.Root)
	}
	hooks.OnDecodeComplete(ctx, source, nodes, time.Since(start), err)
	return d, err
}

func decode(opts Options) (*Decoded, error) {
	data := opts.Source
	if len(data) == 0 {
		var err error
		if data, err = os.ReadFile(opts.Path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
		}
	}

	doc, err := document.Decode(data)
	if err != nil {
		return nil, err
	}
	root, err := doc.Build(opts.fadeLength())
	if err != nil {
		return nil, err
	}
	return &Decoded{Document: doc, Root: root, Hash: cache.Hash(data)}, nil
}
