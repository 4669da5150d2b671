/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"testing"

	"github.com/giahung24/ccm-migration/glyph"
)

func TestMergeScripts_SuperscriptAbsorption(t *testing.T) {
	// Lower baseline "x" at (100,90,108,100); upper single glyph "2" at
	// (109,98,114,105) - Llx nudged from the illustrative 107 to 109 so the
	// strict x0 window (n.Urx-1, n.Urx+4) = (107, 112) unambiguously holds;
	// 107 itself sits exactly on the open lower bound.
	glyphs := []glyph.Glyph{
		g('x', 100, 90, 108, 100),
		g('2', 109, 98, 114, 105),
	}
	lines := BuildLines(glyphs)
	if len(lines) != 2 {
		t.Fatalf("got %d lines before merge, want 2", len(lines))
	}
	merged := MergeScripts(lines)
	if len(merged) != 1 {
		t.Fatalf("got %d lines after merge, want 1", len(merged))
	}
	if len(merged[0].Columns) != 1 {
		t.Fatalf("got %d columns, want 1", len(merged[0].Columns))
	}
	if got := merged[0].Columns[0].String(); got != "x2" {
		t.Errorf("merged text = %q, want %q", got, "x2")
	}
}

func TestMergeScripts_NoMergeWhenOutOfWindow(t *testing.T) {
	glyphs := []glyph.Glyph{
		g('x', 100, 90, 108, 100),
		g('2', 200, 98, 205, 105),
	}
	lines := BuildLines(glyphs)
	merged := MergeScripts(lines)
	if len(merged) != 2 {
		t.Errorf("got %d lines after merge, want 2 (no absorption)", len(merged))
	}
}
