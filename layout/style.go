/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

// EncodeLine converts a Column's parallel text/font arrays into run-length
// Spans, per spec.md StyleRunEncoder: a maximal run of equal FontDescriptor
// becomes one Span.
func EncodeLine(l Line) []Span {
	var spans []Span
	for _, c := range l.Columns {
		spans = append(spans, encodeColumn(c)...)
	}
	return spans
}

func encodeColumn(c Column) []Span {
	if len(c.Text) == 0 {
		return nil
	}
	var spans []Span
	start := 0
	for i := 1; i <= len(c.Text); i++ {
		if i < len(c.Text) && c.Fonts[i] == c.Fonts[start] {
			continue
		}
		f := c.Fonts[start]
		spans = append(spans, Span{
			Rect:   c.Rect,
			Family: f.Family,
			Size:   f.Size,
			R:      f.R,
			G:      f.G,
			B:      f.B,
			Text:   string(c.Text[start:i]),
		})
		start = i
	}
	return spans
}
