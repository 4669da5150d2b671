/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
)

// fixtureSource is a canned glyph.Source: one page of pre-positioned
// glyphs and optional images.
type fixtureSource struct {
	glyphs []glyph.Glyph
	images []glyph.Image
}

func (f *fixtureSource) PageSize() (geom.Rect, error) {
	return geom.Rect{Urx: 612, Ury: 792}, nil
}
func (f *fixtureSource) Glyphs() ([]glyph.Glyph, error) { return f.glyphs, nil }
func (f *fixtureSource) Images() ([]glyph.Image, error) { return f.images, nil }

// word lays out text as a row of 8-unit glyphs starting at (x0, y0).
func word(text string, x0, y0 float64) []glyph.Glyph {
	out := make([]glyph.Glyph, 0, len(text))
	x := x0
	for _, r := range text {
		out = append(out, glyph.Glyph{
			Rect: geom.Rect{Llx: x, Lly: y0, Urx: x + 8, Ury: y0 + 10},
			Text: r,
			Font: glyph.FontDescriptor{Family: "Helvetica", Size: 10},
		})
		x += 8
	}
	return out
}

func fixtureDecoder(pages map[string]*fixtureSource) Decoder {
	return func(path string) (glyph.Source, error) {
		src, ok := pages[path]
		if !ok {
			return nil, errors.New("fixture: no such document")
		}
		return src, nil
	}
}

func TestAnalyzeCorpus_EndToEnd(t *testing.T) {
	logo := []byte{0x89, 0x50, 0x4e, 0x47, 0x01, 0x02}
	pages := map[string]*fixtureSource{}
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		pages[name] = &fixtureSource{
			glyphs: word("Facture", 10, 800),
			images: []glyph.Image{{
				Rect:  geom.Rect{Llx: 500, Lly: 750, Urx: 560, Ury: 790},
				Width: 60, Height: 40, Bytes: logo,
			}},
		}
	}

	idx, docs, errs := AnalyzeCorpus(fixtureDecoder(pages), []string{"a.pdf", "b.pdf", "c.pdf"}, 2)
	require.Empty(t, errs)
	require.Len(t, docs, 3)
	assert.Equal(t, 3, idx.DocumentCount())

	doc := docs["a"]
	require.NotNil(t, doc)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "Facture", doc.Blocks[0].Text())
	assert.Equal(t, 612.0, doc.PageW)
	assert.Equal(t, 792.0, doc.PageH)

	textHash := HashText("Facture")
	assert.Equal(t, ClassUniversal, idx.TextClasses()[textHash])
	assert.True(t, idx.IsTextFixedPosition(textHash))

	imgHash := HashImage(logo)
	assert.Equal(t, ClassUniversal, idx.ImageClasses()[imgHash])
	assert.True(t, idx.IsImageFixedPosition(imgHash))
}

func TestAnalyzeCorpus_BadDocumentIsolated(t *testing.T) {
	pages := map[string]*fixtureSource{
		"good.pdf": {glyphs: word("Facture", 10, 800)},
	}

	idx, docs, errs := AnalyzeCorpus(fixtureDecoder(pages), []string{"good.pdf", "broken.pdf"}, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, "broken.pdf", errs[0].Path)
	require.Len(t, docs, 1)
	assert.Equal(t, 1, idx.DocumentCount())
}

func TestAnalyzeCorpus_EmptyPage(t *testing.T) {
	pages := map[string]*fixtureSource{"empty.pdf": {}}

	_, docs, errs := AnalyzeCorpus(fixtureDecoder(pages), []string{"empty.pdf"}, 1)
	require.Empty(t, errs)
	require.Len(t, docs, 1)
	assert.Empty(t, docs["empty"].Blocks)
}
