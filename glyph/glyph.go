/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package glyph defines the boundary between the decoder (a concrete PDF
// reader, package pdfsource, or a test fixture) and the layout
// reconstruction pipeline in package layout. Nothing in this package parses
// PDF content streams; it only normalizes whatever a decoder hands over into
// the Glyph/Image shapes the rest of the module consumes.
package glyph

import (
	"fmt"

	"github.com/giahung24/ccm-migration/geom"
)

// FontDescriptor is the composite key (family, rounded size, rgb color)
// used as run identity for inline styling. Two glyphs are same-font iff
// their descriptors are structurally equal, which Go gives us for free on
// this comparable struct.
type FontDescriptor struct {
	Family string
	Size   int // rounded to the nearest integer
	R, G, B uint8
}

// UnknownFont is the sentinel descriptor used when a decoder cannot supply
// font information for a glyph (e.g. a text mark with no font).
var UnknownFont = FontDescriptor{Family: "unknown"}

// String renders the descriptor as "family:size:(r,g,b)", used for
// debugging and as a stable map key source.
func (f FontDescriptor) String() string {
	return fmt.Sprintf("%s:%d:(%d,%d,%d)", f.Family, f.Size, f.R, f.G, f.B)
}

// NewFontDescriptor builds a descriptor from decoder-native units: family
// name, unrounded size, and RGB components in [0,1].
func NewFontDescriptor(family string, size float64, r, g, b float64) FontDescriptor {
	return FontDescriptor{
		Family: family,
		Size:   roundToInt(size),
		R:      component(r),
		G:      component(g),
		B:      component(b),
	}
}

func roundToInt(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}

// component converts a [0,1] color component to [0,255] by truncation, per
// spec: "multiply by 255 and floor".
func component(x float64) uint8 {
	v := int(x * 255)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Glyph is a single character (or short cluster) as delivered by the
// decoder: its bounding box, text, and font descriptor.
type Glyph struct {
	Rect geom.Rect
	Text rune
	Font FontDescriptor
}

// Image is a raster image embedded on the page: bounding box, pixel
// dimensions, and the raw encoded byte stream. Bytes is owned by the caller
// until it is handed to a content-addressed store (package corpus); after
// that point only the metadata is needed.
type Image struct {
	Rect   geom.Rect
	Width  int
	Height int
	Bytes  []byte
}

// ImageBlock is a raster image after hashing: bbox, pixel dimensions, and
// the content hash identifying it. Bytes is retained only long enough for
// the content-addressed store to persist one copy per hash; callers may
// drop it afterward.
type ImageBlock struct {
	Rect   geom.Rect
	Width  int
	Height int
	Hash   string
	Bytes  []byte
}

// Source is the decoder boundary: anything that can hand over a page's
// glyphs and images satisfies it. package pdfsource implements this on top
// of a real PDF decoder; tests implement it with fixtures.
type Source interface {
	// PageSize returns the first page's media box.
	PageSize() (geom.Rect, error)
	// Glyphs returns every character glyph on the first page, in no
	// particular order - the layout pipeline reorders them.
	Glyphs() ([]Glyph, error)
	// Images returns every embedded raster image on the first page.
	Images() ([]Image, error)
}
