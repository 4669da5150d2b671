/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"github.com/giahung24/ccm-migration/geom"
	"github.com/giahung24/ccm-migration/layout"
	"github.com/giahung24/ccm-migration/tagger"
)

// bucketKey is the coarse (round(x0,-1), round(y1,-1)) position used to
// find text blocks sharing a location, regardless of document.
type bucketKey struct{ x, y int }

// Index is the corpus-wide inverse index spec.md's CorpusIndex describes:
// per-hash occurrence lists across documents, a coarse position bucket, and
// the three tag sets. It supports both serial ingestion (Add) and sharded
// construction (Merge/MergeAll) so documents can be processed concurrently
// and folded together afterward - merge is associative and commutative,
// since it only ever unions per-key slices and sets.
type Index struct {
	textIndex  map[string]map[string][]geom.Rect
	imageIndex map[string]map[string][]geom.Rect

	positionBucket map[bucketKey]map[string]bool

	withPage    map[string]bool
	withDate    map[string]bool
	withAddress map[string]bool
	dateOf      map[string]string

	// sample keeps one representative Block per text hash (the first one
	// indexed), so the exporter can later render its style runs without
	// every document's full block list staying resident in memory.
	sample map[string]*layout.Block

	docIDs map[string]bool
}

// New returns an empty Index, ready to Add documents or to be merged into.
func New() *Index {
	return &Index{
		textIndex:      map[string]map[string][]geom.Rect{},
		imageIndex:     map[string]map[string][]geom.Rect{},
		positionBucket: map[bucketKey]map[string]bool{},
		withPage:       map[string]bool{},
		withDate:       map[string]bool{},
		withAddress:    map[string]bool{},
		dateOf:         map[string]string{},
		sample:         map[string]*layout.Block{},
		docIDs:         map[string]bool{},
	}
}

// Sample returns a representative Block for hash - the first one recorded
// during indexing - for callers (the exporter) that need its style runs,
// not just its text and tag set.
func (idx *Index) Sample(hash string) (*layout.Block, bool) {
	b, ok := idx.sample[hash]
	return b, ok
}

// Add ingests one document's text and image blocks into the index.
func (idx *Index) Add(doc *Document) {
	idx.docIDs[doc.ID] = true

	for _, b := range doc.Blocks {
		text := b.Text()
		hash := HashText(text)
		idx.appendOccurrence(idx.textIndex, hash, doc.ID, b.Rect)
		if _, ok := idx.sample[hash]; !ok {
			idx.sample[hash] = b
		}

		key := bucketKey{roundTo10(b.Rect.Llx), roundTo10(b.Rect.Ury)}
		if idx.positionBucket[key] == nil {
			idx.positionBucket[key] = map[string]bool{}
		}
		idx.positionBucket[key][hash] = true

		if tagger.IsPagination(text) {
			idx.withPage[hash] = true
		}
		if date, ok := tagger.IsDate(text); ok {
			idx.withDate[hash] = true
			idx.dateOf[hash] = date
		}
		if tagger.EndsWithPostalAddress(text) {
			idx.withAddress[hash] = true
		}
	}

	for _, img := range doc.Images {
		idx.appendOccurrence(idx.imageIndex, img.Hash, doc.ID, img.Rect)
	}
}

func (idx *Index) appendOccurrence(index map[string]map[string][]geom.Rect, hash, docID string, r geom.Rect) {
	if index[hash] == nil {
		index[hash] = map[string][]geom.Rect{}
	}
	index[hash][docID] = append(index[hash][docID], r)
}

// roundTo10 rounds x to the nearest multiple of 10, per spec.md's
// round(x0,-1)/round(y1,-1) position bucket key.
func roundTo10(x float64) int {
	if x >= 0 {
		return int(x/10+0.5) * 10
	}
	return -int(-x/10+0.5) * 10
}

// Merge folds other into idx in place, unioning every per-hash occurrence
// list, position bucket, and tag set. Associative and commutative for
// documents held by one shard each: the occurrence lists, buckets and tag
// sets do not depend on merge order. The representative Sample per hash
// does: it is the one from whichever index was merged in first.
func (idx *Index) Merge(other *Index) {
	for docID := range other.docIDs {
		idx.docIDs[docID] = true
	}
	mergeOccurrences(idx.textIndex, other.textIndex)
	mergeOccurrences(idx.imageIndex, other.imageIndex)

	for key, hashes := range other.positionBucket {
		if idx.positionBucket[key] == nil {
			idx.positionBucket[key] = map[string]bool{}
		}
		for h := range hashes {
			idx.positionBucket[key][h] = true
		}
	}
	for h := range other.withPage {
		idx.withPage[h] = true
	}
	for h := range other.withDate {
		idx.withDate[h] = true
	}
	for h, d := range other.dateOf {
		idx.dateOf[h] = d
	}
	for h := range other.withAddress {
		idx.withAddress[h] = true
	}
	for h, b := range other.sample {
		if _, ok := idx.sample[h]; !ok {
			idx.sample[h] = b
		}
	}
}

func mergeOccurrences(dst, src map[string]map[string][]geom.Rect) {
	for hash, byDoc := range src {
		if dst[hash] == nil {
			dst[hash] = map[string][]geom.Rect{}
		}
		for docID, rects := range byDoc {
			dst[hash][docID] = append(dst[hash][docID], rects...)
		}
	}
}

// MergeAll reduces a slice of per-shard indices into one, per spec.md §5's
// "documents may be processed in parallel by sharding ... and merging the
// three indices at the end" concurrency model.
func MergeAll(shards []*Index) *Index {
	merged := New()
	for _, s := range shards {
		merged.Merge(s)
	}
	return merged
}

// DocumentCount returns N, the number of distinct documents ingested.
func (idx *Index) DocumentCount() int {
	return len(idx.docIDs)
}
