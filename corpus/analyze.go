/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package corpus

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/giahung24/ccm-migration/common"
	"github.com/giahung24/ccm-migration/glyph"
	"github.com/giahung24/ccm-migration/layout"
)

// Decoder opens a single PDF path and returns a ready-to-use glyph.Source,
// or a wrapped ErrRefused/ErrMalformed per spec.md's error kinds. Package
// pdfsource implements it against a real PDF library; tests may supply a
// fixture-backed implementation.
type Decoder func(path string) (glyph.Source, error)

// DocumentError records a per-document failure isolated from the rest of
// the run, per spec.md's "per-document errors are isolated" propagation
// policy.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return "corpus: " + e.Path + ": " + e.Err.Error()
}

func (e *DocumentError) Unwrap() error { return e.Err }

// AnalyzeCorpus runs the full pipeline (decode -> BuildLines -> MergeScripts
// -> GroupBlocks -> index) over paths, sharding across workers goroutines
// and merging their per-shard indices at the end, per spec.md §5's
// concurrency model: documents share no mutable state below the corpus
// index, so sharding on docid and merging afterward is safe. A single bad
// PDF is isolated into the returned error slice rather than aborting the
// run; the index and document map only ever reflect documents that decoded
// successfully.
func AnalyzeCorpus(decode Decoder, paths []string, workers int) (*Index, map[string]*Document, []DocumentError) {
	if workers < 1 {
		workers = 1
	}

	type shardResult struct {
		index *Index
		docs  map[string]*Document
		errs  []DocumentError
	}

	jobs := make(chan string)
	results := make(chan shardResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			shard := New()
			docs := map[string]*Document{}
			var errs []DocumentError

			for path := range jobs {
				doc, err := analyzeOne(decode, path)
				if err != nil {
					errs = append(errs, DocumentError{Path: path, Err: err})
					common.Log.Warning("corpus: skipping %s: %v", path, err)
					continue
				}
				shard.Add(doc)
				docs[doc.ID] = doc
			}
			results <- shardResult{index: shard, docs: docs, errs: errs}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	shards := make([]*Index, 0, workers)
	allDocs := map[string]*Document{}
	var allErrs []DocumentError
	for r := range results {
		shards = append(shards, r.index)
		for id, d := range r.docs {
			allDocs[id] = d
		}
		allErrs = append(allErrs, r.errs...)
	}

	return MergeAll(shards), allDocs, allErrs
}

// docID returns the stable document identity: the source basename without
// its extension.
func docID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func analyzeOne(decode Decoder, path string) (*Document, error) {
	src, err := decode(path)
	if err != nil {
		return nil, err
	}

	page, err := src.PageSize()
	if err != nil {
		return nil, err
	}
	glyphs, err := src.Glyphs()
	if err != nil {
		return nil, err
	}
	images, err := src.Images()
	if err != nil {
		return nil, err
	}

	lines := layout.MergeScripts(layout.BuildLines(glyphs))
	blocks := layout.GroupBlocks(lines)
	blockPtrs := make([]*layout.Block, len(blocks))
	for i := range blocks {
		blockPtrs[i] = &blocks[i]
	}

	imageBlocks := make([]glyph.ImageBlock, 0, len(images))
	for _, im := range images {
		imageBlocks = append(imageBlocks, glyph.ImageBlock{
			Rect:   im.Rect,
			Width:  im.Width,
			Height: im.Height,
			Hash:   HashImage(im.Bytes),
			Bytes:  im.Bytes,
		})
	}

	return &Document{
		ID:     docID(path),
		PageW:  page.Width(),
		PageH:  page.Height(),
		Blocks: blockPtrs,
		Images: imageBlocks,
	}, nil
}
