package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/pipeline"
)

// layoutCommand creates the layout command for printing block geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		asJSON   bool
		viewport viewportFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [doc.toml]",
		Short: "Print the geometry of every block in a layout document",
		Long: `Print the geometry of every block in a layout document.

The layout command runs one layout pass over the document and prints each
block's absolute rectangle with its effective margin and padding. Spacer
blocks inserted by flex containers are listed too.

With --json the whole block tree, including the shaped text lines, is
written as JSON instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Path: args[0]}
			viewport.apply(&opts)
			if asJSON {
				opts.Formats = []string{pipeline.FormatJSON}
			}
			return c.runLayout(cmd.Context(), opts, output, asJSON)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the block tree as JSON")
	viewport.register(cmd)

	return cmd
}

// runLayout lays out the document and prints the geometry.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, asJSON bool) error {
	opts.Logger = loggerFromContext(ctx)
	prog := newProgress(opts.Logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d blocks in %s", result.Stats.BlockCount, result.Viewport))

	if asJSON {
		return writeOutput(output, result.Artifacts[pipeline.FormatJSON])
	}
	if err := writeOutput(output, []byte(geometryTable(result.Root)+"\n")); err != nil {
		return err
	}
	if output == "" {
		printKeyValue("viewport", result.Viewport.String())
		printKeyValue("nodes", strconv.Itoa(result.Stats.NodeCount))
		printKeyValue("blocks", strconv.Itoa(result.Stats.BlockCount))
	}
	return nil
}

var geometryHeaders = []string{"ID", "Kind", "X", "Y", "W", "H", "Margin", "Padding", "Lines"}

// geometryRows flattens the block tree into table rows, parents first, with
// IDs indented by depth.
func geometryRows(root *layout.Block) [][]string {
	var rows [][]string
	root.Walk(func(b *layout.Block, depth int) bool {
		lines := ""
		if b.Kind == layout.KindText {
			lines = strconv.Itoa(len(b.Lines))
		}
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + b.ID,
			string(b.Kind),
			strconv.Itoa(b.Rect.X),
			strconv.Itoa(b.Rect.Y),
			strconv.Itoa(b.Rect.Width),
			strconv.Itoa(b.Rect.Height),
			b.Margin.String(),
			b.Padding.String(),
			lines,
		})
		return true
	})
	return rows
}

// geometryTable renders the block geometry as a bordered table.
func geometryTable(root *layout.Block) string {
	rows := geometryRows(root)
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(geometryHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row >= len(rows):
				return base
			case rows[row][1] == string(layout.KindSpacer):
				return base.Foreground(colorDim)
			case col >= 2 && col <= 5:
				return base.Foreground(colorCyan)
			}
			return base
		})
	return t.Render()
}
