// Package pipeline provides the decode → layout → render pipeline for
// cellkit documents.
//
// This package implements the complete pipeline that the CLI commands share.
// By centralizing this logic, every command applies the same defaults and
// reports the same statistics.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Read a TOML layout document and build its node tree
//  2. Layout: Run one engine pass over the tree inside the viewport
//  3. Render: Generate output in various formats (text, ANSI, JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Path:    "card.toml",
//	    Formats: []string{"text", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(string(result.Artifacts["text"]))
//
// Run individual stages:
//
//	d, err := runner.Decode(ctx, opts)
//	block, err := runner.Layout(ctx, d.Root, viewport)
//	artifacts, err := runner.Render(ctx, block, viewport, opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/text"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default viewport width in cells.
	DefaultWidth = 80

	// DefaultHeight is the default viewport height in cells.
	DefaultHeight = 24

	// DefaultFadeLength is the default number of faded trailing characters.
	DefaultFadeLength = text.DefaultFadeLength
)

// Format constants for output formats.
const (
	FormatText = "text" // Plain painted grid
	FormatANSI = "ansi" // Painted grid with terminal styles
	FormatJSON = "json" // Block tree
	FormatDOT  = "dot"  // Block tree as Graphviz source
	FormatSVG  = "svg"  // Block tree rendered by Graphviz
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatANSI: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Decode options
	Path   string `json:"path,omitempty"` // Document file
	Source []byte `json:"-"`              // Document contents; wins over Path

	// Layout options. Zero extents fall back to the document viewport and
	// then to the defaults.
	Width      int  `json:"width,omitempty"`
	Height     int  `json:"height,omitempty"`
	FadeLength *int `json:"fade_length,omitempty"` // Overrides the document setting

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Outline  bool     `json:"outline,omitempty"`  // Draw container outlines in painted output
	Detailed bool     `json:"detailed,omitempty"` // Include edges and lines in DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the laid-out block tree.
	Root *layout.Block

	// Viewport is the size the tree was laid out in.
	Viewport geometry.Size

	// DocumentHash is the content hash of the decoded document source.
	DocumentHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	BlockCount int
	DecodeTime time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDecode checks required fields for decoding.
func (o *Options) ValidateForDecode() error {
	if o.Path == "" && len(o.Source) == 0 {
		return fmt.Errorf("document path or source is required")
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("viewport must not be negative, got %dx%d", o.Width, o.Height)
	}
	if o.FadeLength != nil && *o.FadeLength < 0 {
		return fmt.Errorf("fade length must be >= 0, got %d", *o.FadeLength)
	}
	o.setLogger()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Viewport resolves the viewport: explicit options first, then the
// document's own viewport, then the defaults.
func (o *Options) Viewport(document geometry.Size) geometry.Size {
	s := geometry.Size{Width: DefaultWidth, Height: DefaultHeight}
	if document.Width > 0 {
		s.Width = document.Width
	}
	if document.Height > 0 {
		s.Height = document.Height
	}
	if o.Width > 0 {
		s.Width = o.Width
	}
	if o.Height > 0 {
		s.Height = o.Height
	}
	return s
}

// fadeLength returns the override for document.Build, or -1 to keep the
// document setting.
func (o *Options) fadeLength() int {
	if o.FadeLength == nil {
		return -1
	}
	return *o.FadeLength
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
