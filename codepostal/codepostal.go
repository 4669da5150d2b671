/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package codepostal holds the French postal-code to city-name dictionary
// the address tagger consumes as read-only reference data. The table is
// embedded at build time so the module has no external data dependency at
// runtime.
package codepostal

import (
	"bufio"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

//go:embed data/codepostal.csv
var embedded embed.FS

// Entry is one (postal code -> city) association. A single postal code may
// map to several cities (rural codes shared by a handful of communes), so
// Table stores a slice per code.
type Entry struct {
	// Normalized is the lower-cased city name; the address tagger applies
	// its fuller accent-folding/cleaning pass to both sides before
	// comparing.
	Normalized string
	// Display is the city name as it should be reported, unmodified casing.
	Display string
}

// Table maps a postal code (the literal 5-digit string as it appears in
// text, e.g. "75015") to the cities registered under it.
type Table map[string][]Entry

// Default is the dictionary loaded from the module's embedded data. It is
// initialized once at package load and never mutated afterward, matching
// spec.md's "auxiliary dictionary ... consumed as data, never mutated"
// resource policy.
var Default Table

func init() {
	f, err := embedded.Open("data/codepostal.csv")
	if err != nil {
		panic(fmt.Sprintf("codepostal: embedded dictionary missing: %v", err))
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		panic(fmt.Sprintf("codepostal: embedded dictionary corrupt: %v", err))
	}
	Default = t
}

// Load reads a two-column CSV (postal_code,city) from r and builds a Table.
// A blank line or a line starting with '#' is skipped.
func Load(r io.Reader) (Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = 2
	cr.Comment = '#'

	t := make(Table)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("codepostal: parse dictionary: %w", err)
		}
		code := strings.TrimSpace(rec[0])
		city := strings.TrimSpace(rec[1])
		if code == "" || city == "" {
			continue
		}
		t[code] = append(t[code], Entry{
			Normalized: normalizeKey(city),
			Display:    city,
		})
	}
	return t, nil
}

// Lookup reports the cities registered under code, and whether code is a
// known postal code at all.
func (t Table) Lookup(code string) ([]Entry, bool) {
	entries, ok := t[code]
	return entries, ok
}

// normalizeKey lower-cases city for dictionary storage. The tagger applies
// the fuller accent-folding/cleaning pipeline to the candidate text before
// comparing; this only keeps the stored form consistent in case.
func normalizeKey(city string) string {
	return strings.ToLower(city)
}
