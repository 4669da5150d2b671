/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"testing"

	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
)

func TestEncodeLine_SingleRun(t *testing.T) {
	f := glyph.NewFontDescriptor("Helvetica", 10, 0, 0, 0)
	col := Column{
		Rect:  geom.Rect{Llx: 0, Lly: 0, Urx: 20, Ury: 10},
		Text:  []rune("ab"),
		Fonts: []glyph.FontDescriptor{f, f},
	}
	line := Line{Columns: []Column{col}}
	spans := EncodeLine(line)
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Text != "ab" {
		t.Errorf("span text = %q, want %q", spans[0].Text, "ab")
	}
	if spans[0].Family != "Helvetica" || spans[0].Size != 10 {
		t.Errorf("span font = %q/%d, want Helvetica/10", spans[0].Family, spans[0].Size)
	}
}

func TestEncodeLine_MultipleRuns(t *testing.T) {
	f1 := glyph.NewFontDescriptor("Helvetica", 10, 0, 0, 0)
	f2 := glyph.NewFontDescriptor("Helvetica-Bold", 10, 0, 0, 0)
	col := Column{
		Rect:  geom.Rect{Llx: 0, Lly: 0, Urx: 30, Ury: 10},
		Text:  []rune("abc"),
		Fonts: []glyph.FontDescriptor{f1, f2, f2},
	}
	line := Line{Columns: []Column{col}}
	spans := EncodeLine(line)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Text != "a" || spans[0].Family != "Helvetica" {
		t.Errorf("span 0 = %q/%s, want a/Helvetica", spans[0].Text, spans[0].Family)
	}
	if spans[1].Text != "bc" || spans[1].Family != "Helvetica-Bold" {
		t.Errorf("span 1 = %q/%s, want bc/Helvetica-Bold", spans[1].Text, spans[1].Family)
	}
}

func TestEncodeLine_EmptyColumn(t *testing.T) {
	col := Column{Rect: geom.Rect{}, Text: nil, Fonts: nil}
	spans := EncodeLine(Line{Columns: []Column{col}})
	if len(spans) != 0 {
		t.Errorf("got %d spans for empty column, want 0", len(spans))
	}
}
