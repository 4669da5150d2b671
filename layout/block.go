/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"sort"

	"github.com/giahung24/ccm-migration/geom"
)

// LineGapRatio and ColGapRatio are the default thresholds spec.md's
// BlockGrouper uses to split lines into blocks.
const (
	LineGapRatio = 2.5
	ColGapRatio  = 3.0
)

// GroupBlocks splits lines sorted top-down (BuildLines/MergeScripts order)
// into Blocks, per spec.md BlockGrouper. Pass Y closes a block whenever the
// vertical gap to the previous line exceeds lineGapRatio times the line's
// height; Pass X then splits each provisional block into column-separated
// sub-blocks. Every Line reaching a final Block holds exactly one Column,
// the unit the Exporter renders as a single textline.
func GroupBlocks(lines []Line) []Block {
	provisional := groupByY(lines)

	var blocks []Block
	for _, group := range provisional {
		blocks = append(blocks, splitByX(group)...)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Rect.Ury > blocks[j].Rect.Ury
	})
	return blocks
}

// groupByY implements Pass Y: walk lines top-down, closing the current
// group whenever the gap since the last line's y0 exceeds
// lineGapRatio*height of the current line.
func groupByY(lines []Line) [][]Line {
	if len(lines) == 0 {
		return nil
	}
	var groups [][]Line
	current := []Line{lines[0]}
	lastY0 := lines[0].Rect().Lly

	for _, l := range lines[1:] {
		r := l.Rect()
		height := r.Ury - r.Lly
		if height <= 0 {
			height = 1
		}
		if lastY0-r.Lly > LineGapRatio*height {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, l)
		lastY0 = r.Lly
	}
	groups = append(groups, current)
	return groups
}

// subBlock is the Pass X accumulator: a growing bbox and the single-column
// lines absorbed into it so far.
type subBlock struct {
	rect  geom.Rect
	lines []Line
}

// splitByX implements Pass X: re-sort the provisional block's lines by x0,
// then for each line, scan existing sub-blocks in insertion order and
// absorb into the first one that either overlaps it horizontally
// (geom.OverlapY) or is not
// separated from it by a wide enough column gap. Each absorbed Line is
// flattened to hold exactly one Column, matching what real corpora exercise
// (every finished Line in a Block carries a single Column - see Line's doc
// comment). A multi-column Line is split into one Line per Column before
// absorption so sub-block membership is decided per Column, not per
// original baseline.
func splitByX(group []Line) []Block {
	var flat []Line
	for _, l := range group {
		for _, c := range l.Columns {
			flat = append(flat, Line{Columns: []Column{c}})
		}
	}
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Columns[0].Rect.Llx < flat[j].Columns[0].Rect.Llx
	})

	var subs []*subBlock
	for _, l := range flat {
		r := l.Rect()
		absorbed := false
		for _, sb := range subs {
			if geom.OverlapY(r, sb.rect) || !geom.ColumnGap(sb.rect, r, ColGapRatio) {
				sb.lines = append(sb.lines, l)
				sb.rect = geom.Union(sb.rect, r)
				absorbed = true
				break
			}
		}
		if !absorbed {
			subs = append(subs, &subBlock{rect: r, lines: []Line{l}})
		}
	}

	blocks := make([]Block, 0, len(subs))
	for _, sb := range subs {
		lines := make([]Line, len(sb.lines))
		copy(lines, sb.lines)
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[i].Rect().Ury > lines[j].Rect().Ury
		})
		blocks = append(blocks, Block{Rect: sb.rect, Lines: lines})
	}
	return blocks
}
