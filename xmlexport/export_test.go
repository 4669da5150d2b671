/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xmlexport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giahung24/ccm-migration/corpus"
	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
	"github.com/giahung24/ccm-migration/layout"
)

func sampleBlock(text string, r geom.Rect) *layout.Block {
	return &layout.Block{
		Rect: r,
		Lines: []layout.Line{{Columns: []layout.Column{{
			Rect:  r,
			Text:  []rune(text),
			Fonts: repeatFont(glyph.FontDescriptor{Family: "Helvetica", Size: 10}, len([]rune(text))),
		}}}},
	}
}

func repeatFont(f glyph.FontDescriptor, n int) []glyph.FontDescriptor {
	fonts := make([]glyph.FontDescriptor, n)
	for i := range fonts {
		fonts[i] = f
	}
	return fonts
}

func TestDocument_Shape(t *testing.T) {
	doc := &corpus.Document{
		ID:    "doc1",
		PageW: 612, PageH: 792,
		Blocks: []*layout.Block{
			sampleBlock("Facture", geom.Rect{Llx: 10, Lly: 800, Urx: 66, Ury: 810}),
		},
		Images: []glyph.ImageBlock{{
			Rect:  geom.Rect{Llx: 500, Lly: 750, Urx: 560, Ury: 790},
			Width: 60, Height: 40, Hash: "abc",
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Document(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, `<textblock bbox="10,800,66,810">`)
	assert.Contains(t, out, `<textline bbox="10,800,66,810">Facture</textline>`)
	assert.Contains(t, out, `<image bbox="500,750,560,790" width="60" height="40">`)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<page>"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</page>"))
}

func TestUniversals_FixedAndLooseBlocks(t *testing.T) {
	idx := corpus.New()
	fixed := geom.Rect{Llx: 10, Lly: 800, Urx: 66, Ury: 810}
	idx.Add(&corpus.Document{ID: "doc1", Blocks: []*layout.Block{
		sampleBlock("Facture", fixed),
		sampleBlock("Page 1 / 1", geom.Rect{Llx: 200, Lly: 20, Urx: 280, Ury: 30}),
	}})
	idx.Add(&corpus.Document{ID: "doc2", Blocks: []*layout.Block{
		sampleBlock("Facture", fixed),
		sampleBlock("Page 1 / 1", geom.Rect{Llx: 400, Lly: 20, Urx: 480, Ury: 30}),
	}})

	var buf bytes.Buffer
	require.NoError(t, Universals(&buf, idx, 0))
	out := buf.String()

	// The stable title block keeps its bbox; the wandering pagination
	// marker is reported with an empty bbox and the page type.
	assert.Contains(t, out, `<textblock fixedLocation="true" type="unk" bbox="10,800,66,810">`)
	assert.Contains(t, out, `<textblock fixedLocation="false" type="page" bbox="">`)
	assert.Contains(t, out, `<span fontFamily="Helvetica" size="10" color="(0,0,0)" bbox="10,800,66,810">Facture</span>`)
	assert.Contains(t, out, "<br></br>")
	assert.Contains(t, out, "<universal_blocks>")
}

func TestUniversals_SyntheticGlobalAddress(t *testing.T) {
	idx := corpus.New()
	r := geom.Rect{Llx: 10, Lly: 10, Urx: 60, Ury: 20}
	// Each document's address block differs by one character (no hash is
	// universal), but all four share the coarse position bucket.
	for _, id := range []string{"a", "b", "c", "d"} {
		idx.Add(&corpus.Document{ID: id, Blocks: []*layout.Block{
			sampleBlock("192 RUE DE DANTZIG, 75015 PARIS "+id, r),
		}})
	}

	var buf bytes.Buffer
	require.NoError(t, Universals(&buf, idx, 0))
	out := buf.String()

	assert.Contains(t, out, `<textblock fixedLocation="true" type="address" bbox="10,10,60,20">`)
}
