/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xmlexport

import (
	"encoding/xml"

	"github.com/giahung24/ccm-migration/layout"
)

func encodeTextblock(enc *xml.Encoder, b *layout.Block) error {
	el := xml.StartElement{
		Name: xml.Name{Local: "textblock"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "bbox"}, Value: bboxAttr(b.Rect)}},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	for _, l := range b.Lines {
		if err := encodeTextline(enc, l); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.End())
}

func encodeTextline(enc *xml.Encoder, l layout.Line) error {
	el := xml.StartElement{
		Name: xml.Name{Local: "textline"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "bbox"}, Value: bboxAttr(l.Rect())}},
	}
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(l.Text())); err != nil {
		return err
	}
	return enc.EncodeToken(el.End())
}
