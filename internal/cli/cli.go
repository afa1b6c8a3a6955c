// Package cli implements the cellkit command-line interface.
//
// The commands lay out TOML documents (see pkg/document) and show the
// result as a geometry table, a painted terminal grid, a Graphviz diagram or
// a live preview that follows the terminal size. The wrap command exposes
// the text shaper on its own.
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and reaches the pipeline and layout
// engine from there.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellkit/pkg/buildinfo"
	"github.com/matzehuels/cellkit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "cellkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cellkit lays out text and boxes on a terminal cell grid",
		Long:         `Cellkit is a CLI tool for laying out text, alignment boxes and flex rows and columns on an integer cell grid, and for inspecting the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.wrapCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Flags
// =============================================================================

// viewportFlags are the flags shared by every command that lays out a document.
type viewportFlags struct {
	width, height int
	fadeLength    int
}

func (f *viewportFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "viewport width in cells (default: document, then 80)")
	cmd.Flags().IntVar(&f.height, "height", 0, "viewport height in cells (default: document, then 24)")
	cmd.Flags().IntVar(&f.fadeLength, "fade-length", -1, "trailing characters marked by the fade overflow (default: document, then 1)")
}

func (f *viewportFlags) apply(opts *pipeline.Options) {
	opts.Width, opts.Height = f.width, f.height
	if f.fadeLength >= 0 {
		n := f.fadeLength
		opts.FadeLength = &n
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	printFile(path)
	return nil
}
