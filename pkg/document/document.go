// Package document loads layout trees from TOML documents.
//
// A document names a viewport, optional settings and a root node:
//
//	[viewport]
//	width = 40
//	height = 10
//
//	[settings]
//	fade_length = 2
//	style = { foreground = "#7D56F4" }
//
//	[root]
//	kind = "column"
//	cross_axis_alignment = "stretch"
//
//	[[root.children]]
//	kind = "text"
//	content = "Hello"
//	text_align = "center"
//
//	[[root.children]]
//	kind = "expanded"
//	child = { kind = "sized_box", height = 1 }
//
// Node kinds are text, align, center, row, column, flex, flexible,
// expanded and sized_box. Containers hold their children in a children
// array (flex kinds) or a single child table (everything else). Unknown keys
// are rejected.
package document

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cellkit/pkg/errors"
	"github.com/matzehuels/cellkit/pkg/geometry"
	"github.com/matzehuels/cellkit/pkg/layout"
	"github.com/matzehuels/cellkit/pkg/text"
)

// Document is a decoded layout document.
type Document struct {
	Viewport Viewport `toml:"viewport"`
	Settings Settings `toml:"settings"`
	Root     NodeSpec `toml:"root"`
}

// Viewport is the document's preferred viewport. Zero extents are unset.
type Viewport struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Settings apply to every node of the document.
type Settings struct {
	// FadeLength is the number of trailing characters the fade overflow
	// policy marks. Unset means text.DefaultFadeLength.
	FadeLength *int `toml:"fade_length"`

	// Style is merged under the style of every text node.
	Style text.Style `toml:"style"`
}

// Decode parses a TOML layout document.
func Decode(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse layout document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if !md.IsDefined("root") {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document has no [root] table")
	}
	if doc.Viewport.Width < 0 || doc.Viewport.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument,
			"viewport must not be negative, got %dx%d", doc.Viewport.Width, doc.Viewport.Height)
	}
	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return doc, nil
}

// ViewportOr returns the document viewport, taking unset extents from
// fallback.
func (d *Document) ViewportOr(fallback geometry.Size) geometry.Size {
	s := fallback
	if d.Viewport.Width > 0 {
		s.Width = d.Viewport.Width
	}
	if d.Viewport.Height > 0 {
		s.Height = d.Viewport.Height
	}
	return s
}

// FadeLength returns the configured fade length.
func (d *Document) FadeLength() int {
	if d.Settings.FadeLength == nil {
		return text.DefaultFadeLength
	}
	return *d.Settings.FadeLength
}

// Build creates a fresh node tree from the document. fadeLength overrides
// the document setting when it is not negative.
func (d *Document) Build(fadeLength int) (layout.Node, error) {
	if fadeLength < 0 {
		fadeLength = d.FadeLength()
	}
	b := builder{fadeLength: fadeLength, style: d.Settings.Style}
	return b.node(d.Root, "root")
}
