/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"sort"

	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
)

// columnBuilder accretes glyphs left to right into a Column. It is the
// mutable accretion structure spec.md's Design Notes call out (the "shared
// mutability across passes" note): only BuildLines uses it, and every stage
// downstream of it (the script merger included) only ever sees the
// immutable Column snapshots it produces.
type columnBuilder struct {
	rect   geom.Rect
	text   []rune
	fonts  []glyph.FontDescriptor
	lastX1 float64 // Urx of the most recently appended glyph
}

func newColumnBuilder(g glyph.Glyph) *columnBuilder {
	return &columnBuilder{
		rect:   g.Rect,
		text:   []rune{g.Text},
		fonts:  []glyph.FontDescriptor{g.Font},
		lastX1: g.Rect.Urx,
	}
}

// append adds g to the column, inserting a single space (font of the
// previous glyph) if the gap before g exceeds 0.2 * width(g).
func (b *columnBuilder) append(g glyph.Glyph) {
	width := g.Rect.Urx - g.Rect.Llx
	if g.Rect.Llx-b.lastX1 > 0.2*width {
		b.text = append(b.text, ' ')
		b.fonts = append(b.fonts, b.fonts[len(b.fonts)-1])
	}
	b.text = append(b.text, g.Text)
	b.fonts = append(b.fonts, g.Font)
	b.rect = geom.Union(b.rect, g.Rect)
	b.lastX1 = g.Rect.Urx
}

func (b *columnBuilder) snapshot() Column {
	text := make([]rune, len(b.text))
	copy(text, b.text)
	fonts := make([]glyph.FontDescriptor, len(b.fonts))
	copy(fonts, b.fonts)
	return Column{Rect: b.rect, Text: text, Fonts: fonts}
}

// BuildLines groups glyphs sharing a baseline (exact Lly) into Columns
// separated by intra-line gaps, per spec.md LineBuilder. The returned Lines
// are ordered top-down (descending Lly), ready for ScriptMerger.
func BuildLines(glyphs []glyph.Glyph) []Line {
	buckets := map[float64][]glyph.Glyph{}
	var baselines []float64
	for _, g := range glyphs {
		if _, ok := buckets[g.Rect.Lly]; !ok {
			baselines = append(baselines, g.Rect.Lly)
		}
		buckets[g.Rect.Lly] = append(buckets[g.Rect.Lly], g)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	lines := make([]Line, 0, len(baselines))
	for _, y0 := range baselines {
		chars := buckets[y0]
		sort.SliceStable(chars, func(i, j int) bool {
			return chars[i].Rect.Llx < chars[j].Rect.Llx
		})

		firstWidth := chars[0].Rect.Urx - chars[0].Rect.Llx
		cols := []*columnBuilder{newColumnBuilder(chars[0])}
		for i := 1; i < len(chars); i++ {
			prev, cur := chars[i-1], chars[i]
			if cur.Rect.Llx-prev.Rect.Urx > 5*firstWidth {
				cols = append(cols, newColumnBuilder(cur))
			} else {
				cols[len(cols)-1].append(cur)
			}
		}

		line := Line{Columns: make([]Column, len(cols))}
		for i, c := range cols {
			line.Columns[i] = c.snapshot()
		}
		lines = append(lines, line)
	}
	return lines
}
