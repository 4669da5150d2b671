/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"github.com/giahung24/ccm-migration/glyph"
	"github.com/giahung24/ccm-migration/layout"
)

// Document is one analyzed PDF: its stable identity (source basename),
// page dimensions, ordered text blocks, and hashed image blocks.
type Document struct {
	ID     string
	PageW  float64
	PageH  float64
	Blocks []*layout.Block
	Images []glyph.ImageBlock
}
