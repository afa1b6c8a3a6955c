package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/pipeline"
	"github.com/matzehuels/cellkit/pkg/render/cells"
)

// viewCommand creates the view command for a live preview.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		fadeLength int
		outline    bool
	)

	cmd := &cobra.Command{
		Use:   "view [doc.toml]",
		Short: "Preview a layout document that follows the terminal size",
		Long: `Preview a layout document that follows the terminal size.

The document is laid out again every time the terminal is resized, so the
effect of alignment, flex distribution and wrapping can be watched live.
The last line shows the viewport and pass count.

Keys: o toggles container outlines, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Path: args[0], Logger: loggerFromContext(cmd.Context())}
			if fadeLength >= 0 {
				opts.FadeLength = &fadeLength
			}
			return c.runView(cmd.Context(), opts, outline)
		},
	}

	cmd.Flags().IntVar(&fadeLength, "fade-length", -1, "trailing characters marked by the fade overflow (default: document, then 1)")
	cmd.Flags().BoolVar(&outline, "outline", false, "start with container outlines shown")

	return cmd
}

// runView decodes the document once and hands the tree to the preview.
func (c *CLI) runView(ctx context.Context, opts pipeline.Options, outline bool) error {
	d, err := c.newRunner().Decode(ctx, opts)
	if err != nil {
		return err
	}

	// The preview owns the terminal, so engine logs would tear the screen.
	m := newPreviewModel(ctx, d.Root, log.NewWithOptions(io.Discard, log.Options{}))
	m.outline = outline

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// =============================================================================
// previewModel - Live layout preview
// =============================================================================

// previewModel is the bubbletea model for the live preview. Every window
// size change runs a full layout pass over the same node tree.
type previewModel struct {
	ctx     context.Context
	root    layout.Node
	engine  layout.Engine
	outline bool

	size   geometry.Size
	block  *layout.Block
	err    error
	passes int
}

func newPreviewModel(ctx context.Context, root layout.Node, logger *log.Logger) previewModel {
	return previewModel{ctx: ctx, root: root, engine: layout.Engine{Logger: logger}}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "o":
			m.outline = !m.outline
		}
	case tea.WindowSizeMsg:
		// The last row is the status line.
		m.size = geometry.Size{Width: max(msg.Width, 0), Height: max(msg.Height-1, 0)}
		m.block, m.err = m.engine.Layout(m.ctx, m.root, m.size)
		m.passes++
	}
	return m, nil
}

func (m previewModel) View() string {
	if m.err != nil {
		return styleIconError.Render(iconError) + " " + m.err.Error() + "\n" + StyleDim.Render("q quit")
	}
	if m.block == nil {
		return StyleDim.Render("waiting for terminal size...")
	}

	grid := cells.Paint(m.block, m.size, cells.Options{Outline: m.outline})
	return grid.Render(true) + "\n" + m.status()
}

func (m previewModel) status() string {
	return StyleDim.Render(fmt.Sprintf("%s · %d blocks · pass %d · o outline · q quit",
		m.size, m.block.Count(), m.passes))
}
