/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package layout reconstructs logical text structure (columns, lines,
// blocks, style runs) from the unordered glyph stream package glyph hands
// over. It implements spec components LineBuilder, ScriptMerger,
// BlockGrouper and StyleRunEncoder.
package layout

import (
	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
)

// Column is a run of glyphs accreted left to right on one baseline, split
// from its neighbors by an inter-column gap. Invariant: len(Text) ==
// len(Fonts).
type Column struct {
	Rect  geom.Rect
	Text  []rune
	Fonts []glyph.FontDescriptor
}

func (c Column) bbox() geom.Rect { return c.Rect }

// String returns the column's text.
func (c Column) String() string { return string(c.Text) }

// Line is an ordered sequence of Columns sharing a baseline, ascending x0.
// LineBuilder and ScriptMerger work with multi-column Lines (one per
// physical baseline); BlockGrouper then regroups their Columns purely by
// position, so every Line that ends up inside a finished Block holds
// exactly one Column - the unit the Exporter renders as a <textline>.
type Line struct {
	Columns []Column
}

// Rect returns the union of the line's column boxes.
func (l Line) Rect() geom.Rect {
	r := l.Columns[0].Rect
	for _, c := range l.Columns[1:] {
		r = geom.Union(r, c.Rect)
	}
	return r
}

func (l Line) bbox() geom.Rect { return l.Rect() }

// Text returns the line's columns concatenated in order.
func (l Line) Text() string {
	var out []rune
	for _, c := range l.Columns {
		out = append(out, c.Text...)
	}
	return string(out)
}

// Block is a cluster of Lines separated from its neighbors by a vertical
// gap exceeding lineGapRatio*lineHeight and not sharing a column region.
// Lines are ordered descending Ury (top-down).
type Block struct {
	Rect  geom.Rect
	Lines []Line
}

// Text joins every line's text with newlines, the representation the
// semantic taggers and the hasher operate on.
func (b Block) Text() string {
	if len(b.Lines) == 0 {
		return ""
	}
	s := b.Lines[0].Text()
	for _, l := range b.Lines[1:] {
		s += "\n" + l.Text()
	}
	return s
}

// Span is one inline style run within a line: a font family/size/color
// applied to a text substring.
type Span struct {
	Rect    geom.Rect
	Family  string
	Size    int
	R, G, B uint8
	Text    string
}
