/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xmlexport

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	"github.com/giahung24/ccm-migration/corpus"
	"github.com/giahung24/ccm-migration/layout"
)

// universalKind picks the Exporter's single type attribute for a block
// that may carry more than one tag, per spec.md §4.6's explicit precedence:
// page > date > address > unk.
func universalKind(idx *corpus.Index, hash string) string {
	switch {
	case idx.HasPage(hash):
		return "page"
	case idx.HasDate(hash):
		return "date"
	case idx.HasAddress(hash):
		return "address"
	default:
		return "unk"
	}
}

// Universals writes the corpus-wide universal-block report:
//
//	<page>
//	  <universal_blocks>
//	    <textblock fixedLocation="true|false" type="page|date|address|unk" bbox="...">
//	      <span fontFamily="..." size="N" color="(r,g,b)" bbox="...">text</span>
//	      <br/>
//	      ...
//	    </textblock>*
//	    <image fixedLocation="..." type="img" bbox="...">{image_hash}</image>*
//	  </universal_blocks>
//	</page>
//
// bbox is the empty string when fixedLocation is false. n caps the number
// of universal text blocks rendered (0 means unlimited), sorted by hash for
// a deterministic, reviewable report.
func Universals(w io.Writer, idx *corpus.Index, n int) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	page := xml.StartElement{Name: xml.Name{Local: "page"}}
	if err := enc.EncodeToken(page); err != nil {
		return err
	}
	blocks := xml.StartElement{Name: xml.Name{Local: "universal_blocks"}}
	if err := enc.EncodeToken(blocks); err != nil {
		return err
	}

	textHashes := universalHashes(idx.TextClasses())
	if n > 0 && len(textHashes) > n {
		textHashes = textHashes[:n]
	}
	for _, hash := range textHashes {
		if err := encodeUniversalTextblock(enc, idx, hash); err != nil {
			return err
		}
	}

	// A shared address region whose text varies slightly per document
	// (account number, customer name) never reaches universality on its
	// hash alone; when enough documents carry an address block in the same
	// coarse position, a synthetic universal block stands in for it.
	if hash, ok := idx.GlobalAddressHash(); ok && !containsHash(textHashes, hash) {
		if err := encodeGlobalAddress(enc, idx, hash); err != nil {
			return err
		}
	}

	imageHashes := universalHashes(idx.ImageClasses())
	for _, hash := range imageHashes {
		if err := encodeUniversalImage(enc, idx, hash); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(blocks.End()); err != nil {
		return err
	}
	if err := enc.EncodeToken(page.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func containsHash(hashes []string, hash string) bool {
	for _, h := range hashes {
		if h == hash {
			return true
		}
	}
	return false
}

// encodeGlobalAddress writes the synthesized universal address block at the
// representative hash's first bbox.
func encodeGlobalAddress(enc *xml.Encoder, idx *corpus.Index, hash string) error {
	bboxVal := ""
	if r, ok := idx.FirstBBox(hash); ok {
		bboxVal = bboxAttr(r)
	}
	el := xml.StartElement{
		Name: xml.Name{Local: "textblock"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "fixedLocation"}, Value: "true"},
			{Name: xml.Name{Local: "type"}, Value: "address"},
			{Name: xml.Name{Local: "bbox"}, Value: bboxVal},
		},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if sample, ok := idx.Sample(hash); ok {
		for _, l := range sample.Lines {
			spans := layout.EncodeLine(l)
			for _, span := range spans {
				if err := encodeSpan(enc, span); err != nil {
					return err
				}
			}
			if len(spans) > 0 {
				if err := encodeBreak(enc); err != nil {
					return err
				}
			}
		}
	}
	return enc.EncodeToken(el.End())
}

func universalHashes(classes map[string]corpus.Class) []string {
	var out []string
	for h, c := range classes {
		if c == corpus.ClassUniversal {
			out = append(out, h)
		}
	}
	sort.Strings(out)
	return out
}

func encodeUniversalTextblock(enc *xml.Encoder, idx *corpus.Index, hash string) error {
	fixed := idx.IsTextFixedPosition(hash)
	bboxVal := ""
	if fixed {
		if r, ok := idx.FirstBBox(hash); ok {
			bboxVal = bboxAttr(r)
		}
	}

	el := xml.StartElement{
		Name: xml.Name{Local: "textblock"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "fixedLocation"}, Value: fmt.Sprint(fixed)},
			{Name: xml.Name{Local: "type"}, Value: universalKind(idx, hash)},
			{Name: xml.Name{Local: "bbox"}, Value: bboxVal},
		},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}

	if sample, ok := idx.Sample(hash); ok {
		for _, l := range sample.Lines {
			spans := layout.EncodeLine(l)
			for _, span := range spans {
				if err := encodeSpan(enc, span); err != nil {
					return err
				}
			}
			if len(spans) > 0 {
				if err := encodeBreak(enc); err != nil {
					return err
				}
			}
		}
	}
	return enc.EncodeToken(el.End())
}

func encodeSpan(enc *xml.Encoder, s layout.Span) error {
	el := xml.StartElement{
		Name: xml.Name{Local: "span"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "fontFamily"}, Value: s.Family},
			{Name: xml.Name{Local: "size"}, Value: fmt.Sprint(s.Size)},
			{Name: xml.Name{Local: "color"}, Value: fmt.Sprintf("(%d,%d,%d)", s.R, s.G, s.B)},
			{Name: xml.Name{Local: "bbox"}, Value: bboxAttr(s.Rect)},
		},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(s.Text)); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

func encodeBreak(enc *xml.Encoder) error {
	el := xml.StartElement{Name: xml.Name{Local: "br"}}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}

func encodeUniversalImage(enc *xml.Encoder, idx *corpus.Index, hash string) error {
	fixed := idx.IsImageFixedPosition(hash)
	bboxVal := ""
	if fixed {
		if rr, ok := idx.FirstImageBBox(hash); ok {
			bboxVal = bboxAttr(rr)
		}
	}
	el := xml.StartElement{
		Name: xml.Name{Local: "image"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "fixedLocation"}, Value: fmt.Sprint(fixed)},
			{Name: xml.Name{Local: "type"}, Value: "img"},
			{Name: xml.Name{Local: "bbox"}, Value: bboxVal},
		},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(hash)); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}
