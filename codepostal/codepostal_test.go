/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package codepostal

import (
	"strings"
	"testing"
)

func TestDefaultTableLoaded(t *testing.T) {
	entries, ok := Default.Lookup("75015")
	if !ok || len(entries) == 0 {
		t.Fatalf("expected 75015 in the embedded dictionary")
	}
	if entries[0].Normalized != "paris" {
		t.Errorf("normalized = %q, want %q", entries[0].Normalized, "paris")
	}
	if entries[0].Display != "Paris" {
		t.Errorf("display = %q, want %q", entries[0].Display, "Paris")
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	table, err := Load(strings.NewReader("# header\n69001,Lyon\n\n69002,Lyon\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 2 {
		t.Errorf("got %d codes, want 2", len(table))
	}
	if _, ok := table.Lookup("69001"); !ok {
		t.Errorf("expected 69001 in the table")
	}
}

func TestLoad_SharedCode(t *testing.T) {
	table, err := Load(strings.NewReader("01400,Châtillon-sur-Chalaronne\n01400,L'Abergement-Clémenciat\n"))
	if err != nil {
		t.Fatal(err)
	}
	entries, ok := table.Lookup("01400")
	if !ok {
		t.Fatalf("expected 01400 in the table")
	}
	if len(entries) != 2 {
		t.Errorf("got %d cities under 01400, want 2", len(entries))
	}
}
