package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellkit/pkg/pipeline"
)

// dotCommand creates the dot command for node-link diagrams of block trees.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		viewport viewportFlags
	)

	cmd := &cobra.Command{
		Use:   "dot [doc.toml]",
		Short: "Draw the laid-out block tree as a Graphviz diagram",
		Long: `Draw the laid-out block tree as a Graphviz diagram.

Every block becomes a box labeled with its ID, kind and rectangle. With
-f svg the diagram is rendered in-process; no Graphviz installation is
needed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != pipeline.FormatDOT && format != pipeline.FormatSVG {
				return fmt.Errorf("invalid format: %q (must be dot or svg)", format)
			}
			return c.runRender(cmd.Context(), args[0], &renderOpts{
				output:   output,
				formats:  []string{format},
				detailed: detailed,
				viewport: viewport,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.svg for svg)")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatDOT, "output format: dot, svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show margins, padding and lines in labels")
	viewport.register(cmd)

	return cmd
}
