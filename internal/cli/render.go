package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string        // output file path (or base path for multiple outputs)
	formats  []string      // output formats: "text", "ansi", "json", "dot", "svg"
	noColor  bool          // paint plain text instead of ANSI styles
	outline  bool          // draw container outlines
	detailed bool          // include edges and lines in diagram labels
	viewport viewportFlags // viewport and fade overrides
}

// renderCommand creates the render command for painting documents.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [doc.toml]",
		Short: "Paint a layout document into the terminal grid",
		Long: `Paint a layout document into the terminal grid.

Without --format the document is painted with its text styles applied and
printed to stdout. Any pipeline format can be requested instead; with more
than one format, --output is used as the base path and each format gets its
own extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseRenderFormats(formatsStr, opts.noColor)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ansi (default), text, json, dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "paint plain text without styles")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "draw the outline of every container")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show margins, padding and lines in diagrams")
	opts.viewport.register(cmd)

	return cmd
}

// parseRenderFormats parses the --format flag. The default is the styled
// grid, or the plain grid with noColor.
func parseRenderFormats(s string, noColor bool) []string {
	if s != "" {
		return parseFormats(s)
	}
	if noColor {
		return []string{pipeline.FormatText}
	}
	return []string{pipeline.FormatANSI}
}

// runRender executes the pipeline and writes every requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	po := pipeline.Options{
		Path:     input,
		Formats:  opts.formats,
		Outline:  opts.outline,
		Detailed: opts.detailed,
		Logger:   loggerFromContext(ctx),
	}
	opts.viewport.apply(&po)

	var spin *spinner
	if needsSpinner(opts.formats) {
		spin = startSpinner(ctx, "Rendering block diagram...")
	}

	result, err := c.newRunner().Execute(ctx, po)
	if spin != nil {
		if err != nil {
			spin.Fail("Render failed")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return err
	}

	wroteFiles := false
	for _, format := range opts.formats {
		path := outputPath(opts.output, input, format, len(opts.formats))
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return err
		}
		wroteFiles = wroteFiles || path != ""
	}
	if wroteFiles {
		printSuccess("Rendered %s at %s", strings.Join(opts.formats, ", "), result.Viewport)
		printNextStep("Preview", appName+" view "+input)
	}
	return nil
}

// needsSpinner reports whether a format is slow enough to show progress.
func needsSpinner(formats []string) bool {
	for _, f := range formats {
		if f == pipeline.FormatSVG {
			return true
		}
	}
	return false
}

// outputPath picks where one format goes. A single format goes to output
// (stdout when empty), except binary-ish diagram formats, which default to
// a file next to the input. Multiple formats share output as a base path.
func outputPath(output, input, format string, count int) string {
	if count == 1 && (output != "" || format != pipeline.FormatSVG) {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return fmt.Sprintf("%s.%s", base, extension(format))
}

func extension(format string) string {
	switch format {
	case pipeline.FormatText, pipeline.FormatANSI:
		return format + ".txt"
	}
	return format
}
