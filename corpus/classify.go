/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"math"
	"sort"

	"github.com/giahung24/ccm-migration/geom"
)

// Class is a hash's corpus-wide occurrence class.
type Class int

const (
	ClassUnique Class = iota
	ClassRepeated
	ClassUniversal
)

func classify(counts map[string]int, n int) map[string]Class {
	out := make(map[string]Class, len(counts))
	for hash, c := range counts {
		switch {
		case c == n:
			out[hash] = ClassUniversal
		case c > 1:
			out[hash] = ClassRepeated
		default:
			out[hash] = ClassUnique
		}
	}
	return out
}

func occurrenceCounts(index map[string]map[string][]geom.Rect) map[string]int {
	out := make(map[string]int, len(index))
	for hash, byDoc := range index {
		out[hash] = len(byDoc)
	}
	return out
}

// TextClasses classifies every text hash as unique/repeated/universal
// relative to the corpus's document count.
func (idx *Index) TextClasses() map[string]Class {
	return classify(occurrenceCounts(idx.textIndex), idx.DocumentCount())
}

// ImageClasses classifies every image hash as unique/repeated/universal.
func (idx *Index) ImageClasses() map[string]Class {
	return classify(occurrenceCounts(idx.imageIndex), idx.DocumentCount())
}

// firstBBoxes returns, for hash, the first bbox recorded per document -
// the positional-stability test's input, per the invariant that a
// universal hash appears exactly once per document (duplicates within one
// document take the first occurrence).
func firstBBoxes(index map[string]map[string][]geom.Rect, hash string) []geom.Rect {
	byDoc := index[hash]
	docs := make([]string, 0, len(byDoc))
	for d := range byDoc {
		docs = append(docs, d)
	}
	sort.Strings(docs)

	out := make([]geom.Rect, 0, len(docs))
	for _, d := range docs {
		if rects := byDoc[d]; len(rects) > 0 {
			out = append(out, rects[0])
		}
	}
	return out
}

func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return math.Sqrt(variance)
}

// IsTextFixedPosition reports whether a universal text hash's
// per-document bboxes are positionally stable: the mean of the four
// per-axis standard deviations is below 5 units.
func (idx *Index) IsTextFixedPosition(hash string) bool {
	return isFixedPosition(idx.textIndex, hash)
}

// IsImageFixedPosition is IsTextFixedPosition's counterpart for image
// hashes.
func (idx *Index) IsImageFixedPosition(hash string) bool {
	return isFixedPosition(idx.imageIndex, hash)
}

func isFixedPosition(index map[string]map[string][]geom.Rect, hash string) bool {
	rects := firstBBoxes(index, hash)
	if len(rects) == 0 {
		return false
	}
	var llx, lly, urx, ury []float64
	for _, r := range rects {
		llx = append(llx, r.Llx)
		lly = append(lly, r.Lly)
		urx = append(urx, r.Urx)
		ury = append(ury, r.Ury)
	}
	mean := (stddev(llx) + stddev(lly) + stddev(urx) + stddev(ury)) / 4
	return mean < 5
}

// FirstBBox returns the first recorded bbox for a text hash (across every
// document, in doc-id order), used to place a universal block in reports.
func (idx *Index) FirstBBox(hash string) (geom.Rect, bool) {
	rects := firstBBoxes(idx.textIndex, hash)
	if len(rects) == 0 {
		return geom.Rect{}, false
	}
	return rects[0], true
}

// FirstImageBBox is FirstBBox's counterpart for image hashes.
func (idx *Index) FirstImageBBox(hash string) (geom.Rect, bool) {
	rects := firstBBoxes(idx.imageIndex, hash)
	if len(rects) == 0 {
		return geom.Rect{}, false
	}
	return rects[0], true
}

// HasPage, HasDate and HasAddress report the independent semantic tags
// recorded for a text hash while it was indexed.
func (idx *Index) HasPage(hash string) bool    { return idx.withPage[hash] }
func (idx *Index) HasDate(hash string) bool    { return idx.withDate[hash] }
func (idx *Index) HasAddress(hash string) bool { return idx.withAddress[hash] }

// DateOf returns the normalized date string recorded for hash, if any.
func (idx *Index) DateOf(hash string) (string, bool) {
	d, ok := idx.dateOf[hash]
	return d, ok
}

// GlobalAddressBlock synthesizes a universal address block when a coarse
// position bucket holds more than 0.75*N distinct address-tagged hashes
// (N being the corpus's document count), even if no single hash reached
// universality (different documents may render the same field with a
// slightly different hash, e.g. a varying account number embedded in the
// address block). It returns the representative hash's first bbox.
func (idx *Index) GlobalAddressBlock() (geom.Rect, bool) {
	hash, ok := idx.GlobalAddressHash()
	if !ok {
		return geom.Rect{}, false
	}
	return idx.FirstBBox(hash)
}

// GlobalAddressHash returns the representative hash behind
// GlobalAddressBlock, for callers (the exporter) that also need its sample
// block.
func (idx *Index) GlobalAddressHash() (string, bool) {
	threshold := 0.75 * float64(idx.DocumentCount())

	var bestHash string
	var bestCount int
	for _, hashes := range idx.positionBucket {
		var addrHashes []string
		for hash := range hashes {
			if idx.withAddress[hash] {
				addrHashes = append(addrHashes, hash)
			}
		}
		// The bucket qualifies on the number of distinct address-tagged
		// hashes it holds: each document's slightly-different rendering of
		// the shared address region contributes one.
		if float64(len(addrHashes)) <= threshold || len(addrHashes) < bestCount {
			continue
		}
		sort.Strings(addrHashes)
		// Buckets of equal size are decided by their smallest hash, so the
		// winner does not depend on map iteration order.
		if len(addrHashes) == bestCount && addrHashes[0] >= bestHash {
			continue
		}
		bestCount = len(addrHashes)
		bestHash = addrHashes[0]
	}
	return bestHash, bestHash != ""
}
