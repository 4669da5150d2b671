/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pdfsource adapts github.com/unidoc/unipdf/v4 to the decoder
// boundary defined in package glyph: it opens a PDF file, takes its first
// page, and exposes the page's character glyphs and embedded raster images
// in the shapes the layout pipeline consumes. Nothing outside this package
// touches unipdf.
package pdfsource

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/unidoc/unipdf/v4/extractor"
	"github.com/unidoc/unipdf/v4/model"

	"github.com/giahung24/ccm-migration/common"
	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/glyph"
)

// ErrRefused marks a document that prohibits extraction: it is encrypted
// and cannot be opened with an empty owner password. The caller skips the
// document and moves on.
var ErrRefused = errors.New("pdfsource: document refuses extraction")

// ErrMalformed marks a document the reader could not parse at all.
var ErrMalformed = errors.New("pdfsource: malformed document")

// Document is an open PDF positioned on its first page. Analysis is
// first-page-only; later pages are never read.
type Document struct {
	page *model.PdfPage
}

// Open reads the PDF at path and returns a Document over its first page.
// Encrypted files are retried with an empty password; if that fails the
// error wraps ErrRefused. Parse failures wrap ErrMalformed.
func Open(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	reader, err := model.NewPdfReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	isEncrypted, err := reader.IsEncrypted()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if isEncrypted {
		auth, err := reader.Decrypt([]byte(""))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRefused, err)
		}
		if !auth {
			return nil, fmt.Errorf("%w: password required", ErrRefused)
		}
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if numPages == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrMalformed)
	}

	page, err := reader.GetPage(1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &Document{page: page}, nil
}

// Decode is Open with the glyph.Source return type, matching the
// corpus.Decoder signature.
func Decode(path string) (glyph.Source, error) {
	return Open(path)
}

// PageSize returns the first page's media box.
func (d *Document) PageSize() (geom.Rect, error) {
	box, err := d.page.GetMediaBox()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return geom.Rect{Llx: box.Llx, Lly: box.Lly, Urx: box.Urx, Ury: box.Ury}, nil
}

// Glyphs extracts every character glyph on the page. unipdf's extractor
// yields one TextMark per drawn character (plus synthetic spaces and line
// breaks flagged Meta, which are dropped - the layout pipeline inserts its
// own word gaps from geometry). A mark whose decoded text is a multi-rune
// cluster is split into per-rune glyphs over even horizontal slices of the
// mark's box so the line builder's width heuristics stay meaningful.
func (d *Document) Glyphs() ([]glyph.Glyph, error) {
	ex, err := extractor.New(d.page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	pageText, _, numMisses, err := ex.ExtractPageText()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if numMisses > 0 {
		common.Log.Debug("pdfsource: %d charcodes could not be decoded", numMisses)
	}

	var glyphs []glyph.Glyph
	for _, mark := range pageText.Marks().Elements() {
		if mark.Meta || strings.TrimSpace(mark.Text) == "" {
			continue
		}
		font := markFont(mark)
		box := geom.Rect{
			Llx: mark.BBox.Llx,
			Lly: mark.BBox.Lly,
			Urx: mark.BBox.Urx,
			Ury: mark.BBox.Ury,
		}
		runes := []rune(mark.Text)
		step := box.Width() / float64(len(runes))
		for i, r := range runes {
			glyphs = append(glyphs, glyph.Glyph{
				Rect: geom.Rect{
					Llx: box.Llx + float64(i)*step,
					Lly: box.Lly,
					Urx: box.Llx + float64(i+1)*step,
					Ury: box.Ury,
				},
				Text: r,
				Font: font,
			})
		}
	}
	return glyphs, nil
}

// markFont converts a text mark's font name, size and fill color into the
// composite descriptor used as run identity.
func markFont(mark extractor.TextMark) glyph.FontDescriptor {
	if mark.Font == nil {
		return glyph.UnknownFont
	}
	r, g, b := fillColorComponents(mark.FillColor)
	return glyph.NewFontDescriptor(mark.Font.BaseFont(), mark.FontSize, r, g, b)
}

// fillColorComponents maps a mark's fill color to [0,1] components. A nil
// color (unipdf reports none for some marks) is black.
func fillColorComponents(c color.Color) (float64, float64, float64) {
	if c == nil {
		return 0, 0, 0
	}
	r, g, b, _ := c.RGBA()
	return float64(r) / 65535, float64(g) / 65535, float64(b) / 65535
}

// Images extracts the page's raster images with their drawn positions. The
// raw encoded sample data is what gets hashed, so two placements of the
// same XObject share an identity.
func (d *Document) Images() ([]glyph.Image, error) {
	ex, err := extractor.New(d.page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	pageImages, err := ex.ExtractPageImages(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var images []glyph.Image
	for _, mark := range pageImages.Images {
		if mark.Image == nil {
			continue
		}
		images = append(images, glyph.Image{
			Rect:   geom.Rect{Llx: mark.X, Lly: mark.Y, Urx: mark.X + mark.Width, Ury: mark.Y + mark.Height},
			Width:  int(mark.Image.Width),
			Height: int(mark.Image.Height),
			Bytes:  mark.Image.Data,
		})
	}
	return images, nil
}
