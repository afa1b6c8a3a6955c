package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellkit/pkg/text"
)

// wrapOpts holds the command-line flags for the wrap command.
type wrapOpts struct {
	width, height int
	softWrap      bool
	overflow      string
	align         string
	maxLines      int
	letterSpacing int
	wordSpacing   int
	fadeLength    int
	frame         bool
}

// wrapCommand creates the wrap command for shaping a single text run.
func (c *CLI) wrapCommand() *cobra.Command {
	opts := wrapOpts{
		width:      40,
		height:     1 << 16,
		softWrap:   true,
		overflow:   text.Clip.String(),
		align:      text.Left.String(),
		fadeLength: text.DefaultFadeLength,
	}

	cmd := &cobra.Command{
		Use:   "wrap [text]",
		Short: "Shape text into lines of a fixed width",
		Long: `Shape text into lines of a fixed width.

Text is cut into chunks of exactly --width characters (a character is a
grapheme cluster), not at word boundaries. The overflow policy decides what
happens to a line that reaches the width: clip, ellipsis, fade or visible.
Faded characters are printed dimmed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := opts.run(args[0])
			if err != nil {
				return err
			}
			lines, err := text.Shape(run, opts.width, opts.height, opts.fadeLength)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("shaped text", "lines", len(lines), "widest", lines.Width())
			fmt.Println(formatLines(lines, opts.width, opts.frame, StyleDim.Render))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "line width in characters")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "box height; zero or less yields no lines")
	cmd.Flags().BoolVar(&opts.softWrap, "soft-wrap", opts.softWrap, "wrap onto further lines")
	cmd.Flags().StringVar(&opts.overflow, "overflow", opts.overflow, "overflow policy: clip, ellipsis, fade, visible")
	cmd.Flags().StringVar(&opts.align, "align", opts.align, "text alignment: left, right, center, justify")
	cmd.Flags().IntVar(&opts.maxLines, "max-lines", 0, "maximum number of lines (0: unlimited)")
	cmd.Flags().IntVar(&opts.letterSpacing, "letter-spacing", 0, "spaces inserted between adjacent characters")
	cmd.Flags().IntVar(&opts.wordSpacing, "word-spacing", 0, "cells each space occupies")
	cmd.Flags().IntVar(&opts.fadeLength, "fade-length", opts.fadeLength, "trailing characters marked by the fade overflow")
	cmd.Flags().BoolVar(&opts.frame, "frame", false, "draw the line box edges")

	return cmd
}

// run builds the text run described by the flags.
func (o wrapOpts) run(content string) (text.Run, error) {
	overflow, err := text.ParseOverflow(o.overflow)
	if err != nil {
		return text.Run{}, err
	}
	align, err := text.ParseAlign(o.align)
	if err != nil {
		return text.Run{}, err
	}
	return text.Run{
		Content:  content,
		SoftWrap: o.softWrap,
		Overflow: overflow,
		MaxLines: o.maxLines,
		Align:    align,
		Style: text.Style{
			LetterSpacing: o.letterSpacing,
			WordSpacing:   o.wordSpacing,
		},
	}, nil
}

// formatLines joins shaped lines for display. The faded segment of each
// line goes through fade. With frame set, every line is padded to width and
// enclosed in box edges.
func formatLines(lines text.Wrapped, width int, frame bool, fade func(...string) string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		s := l.Text
		if l.Faded != "" {
			s += fade(l.Faded)
		}
		if frame {
			s = "│" + s + strings.Repeat(" ", max(0, width-l.Len())) + "│"
		}
		out[i] = s
	}
	return strings.Join(out, "\n")
}
