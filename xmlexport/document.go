/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package xmlexport serializes per-document page structure and the
// corpus-wide universal-block report into the external XML shapes spec.md
// §6 defines.
package xmlexport

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/giahung24/ccm-migration/corpus"
	"github.com/giahung24/ccm-migration/geom"
)

func bboxAttr(r geom.Rect) string {
	return fmt.Sprintf("%g,%g,%g,%g", r.Llx, r.Lly, r.Urx, r.Ury)
}

// Document writes one analyzed document as:
//
//	<page>
//	  <textblocks>
//	    <textblock bbox="x0,y0,x1,y1">
//	      <textline bbox="...">text</textline>*
//	    </textblock>*
//	  </textblocks>
//	  <images>
//	    <image bbox="..." width="W" height="H"/>*
//	  </images>
//	</page>
func Document(w io.Writer, doc *corpus.Document) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	page := xml.StartElement{Name: xml.Name{Local: "page"}}
	if err := enc.EncodeToken(page); err != nil {
		return err
	}

	textblocks := xml.StartElement{Name: xml.Name{Local: "textblocks"}}
	if err := enc.EncodeToken(textblocks); err != nil {
		return err
	}
	for _, b := range doc.Blocks {
		if err := encodeTextblock(enc, b); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(textblocks.End()); err != nil {
		return err
	}

	images := xml.StartElement{Name: xml.Name{Local: "images"}}
	if err := enc.EncodeToken(images); err != nil {
		return err
	}
	for _, im := range doc.Images {
		if err := encodeImage(enc, im.Rect, im.Width, im.Height); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(images.End()); err != nil {
		return err
	}

	if err := enc.EncodeToken(page.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func encodeImage(enc *xml.Encoder, r geom.Rect, width, height int) error {
	el := xml.StartElement{
		Name: xml.Name{Local: "image"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "bbox"}, Value: bboxAttr(r)},
			{Name: xml.Name{Local: "width"}, Value: fmt.Sprint(width)},
			{Name: xml.Name{Local: "height"}, Value: fmt.Sprint(height)},
		},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}
