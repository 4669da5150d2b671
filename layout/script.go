/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
)

// appendColumn returns the Column formed by absorbing src into dst,
// applying the same 0.2*width word-gap rule BuildLines uses when folding a
// glyph into a column.
func appendColumn(dst, src Column) Column {
	width := src.Rect.Urx - src.Rect.Llx
	space := src.Rect.Llx-dst.Rect.Urx > 0.2*width

	text := make([]rune, 0, len(dst.Text)+len(src.Text)+1)
	text = append(text, dst.Text...)

	fonts := make([]glyph.FontDescriptor, 0, len(dst.Fonts)+len(src.Fonts)+1)
	fonts = append(fonts, dst.Fonts...)

	if space {
		text = append(text, ' ')
		fonts = append(fonts, fonts[len(fonts)-1])
	}
	text = append(text, src.Text...)
	fonts = append(fonts, src.Fonts...)

	return Column{
		Rect:  geom.Union(dst.Rect, src.Rect),
		Text:  text,
		Fonts: fonts,
	}
}

// superscript/subscript x0 window: (n.Urx-1, n.Urx+4), per spec.md
// ScriptMerger.
const (
	superscriptXLo = -1.0
	superscriptXHi = 4.0
)

// MergeScripts folds single-column short baselines into an adjacent line
// when the geometry is consistent with a superscript or subscript mark, per
// spec.md ScriptMerger. lines must be ordered top-down (descending Lly), the
// order BuildLines returns.
func MergeScripts(lines []Line) []Line {
	dropped := make([]bool, len(lines))

	for i := range lines {
		if len(lines[i].Columns) != 1 {
			continue
		}
		c := lines[i].Columns[0]
		merged := false

		if i < len(lines)-1 && len(lines[i+1].Columns) > 0 {
			last := len(lines[i+1].Columns) - 1
			n := lines[i+1].Columns[last]
			if n.Rect.Lly < c.Rect.Lly && c.Rect.Lly < n.Rect.Ury &&
				n.Rect.Urx+superscriptXLo < c.Rect.Llx && c.Rect.Llx < n.Rect.Urx+superscriptXHi {
				lines[i+1].Columns[last] = appendColumn(n, c)
				dropped[i] = true
				merged = true
			}
		}
		if !merged && i > 0 && len(lines[i-1].Columns) > 0 {
			last := len(lines[i-1].Columns) - 1
			n := lines[i-1].Columns[last]
			if n.Rect.Lly < c.Rect.Ury && c.Rect.Ury < n.Rect.Ury &&
				n.Rect.Urx+superscriptXLo < c.Rect.Llx && c.Rect.Llx < n.Rect.Urx+superscriptXHi {
				lines[i-1].Columns[last] = appendColumn(n, c)
				dropped[i] = true
			}
		}
	}

	out := make([]Line, 0, len(lines))
	for i, l := range lines {
		if !dropped[i] {
			out = append(out, l)
		}
	}
	return out
}
