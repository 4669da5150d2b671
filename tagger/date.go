/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package tagger

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// monthAliases maps every recognized month name/abbreviation to its 1-12
// month number; numeric months are not listed and are parsed as integers
// by uniformDate. French month names and their common abbreviations,
// including the accent-dropped and typo'd forms found in real invoices
// ("julliet", "decembre").
var monthAliases = map[string]int{
	"janvier": 1, "jan": 1,
	"février": 2, "fevrier": 2, "fev": 2, "fév": 2,
	"mars": 3, "mar": 3,
	"avril": 4, "avr": 4,
	"mai": 5,
	"juin": 6, "jui": 6,
	"julliet": 7, "jul": 7,
	"août": 8, "aout": 8,
	"septembre": 9, "sept": 9, "sep": 9,
	"octobre": 10, "oct": 10,
	"novembre": 11, "nov": 11,
	"décembre": 12, "decembre": 12, "dec": 12, "déc": 12,
}

const (
	dayGrammar   = `(?:0?[1-9]|[12][0-9]|3[01])(?:ère|ere|er|re|è|e)?`
	monthNumeric = `(?:0?[1-9]|1[012])`
	monthName    = `(?:septembre|novembre|décembre|decembre|octobre|janvier|février|fevrier|julliet|avril|mars|juin|mai|août|aout|jan|fev|fév|mar|avr|jui|jul|sept|sep|oct|nov|dec|déc)`
	yearGrammar  = `(?:20)?\d{2}`
)

var monthEither = `(?:` + monthNumeric + `|` + monthName + `)`

var dateGrammars = []*regexp.Regexp{
	regexp.MustCompile(dayGrammar + `/` + monthEither + `/` + yearGrammar),
	regexp.MustCompile(dayGrammar + ` ` + monthName + `\.? ` + yearGrammar),
	regexp.MustCompile(dayGrammar + `-` + monthEither + `-` + yearGrammar),
	regexp.MustCompile(dayGrammar + `\.` + monthEither + `\.` + yearGrammar),
}

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]`)
var ordinalMarks = regexp.MustCompile(`[eérè]`)

// Date is one date match found in a block of text.
type Date struct {
	Start, End int    // byte offsets of the raw match in the source text
	Raw        string // the substring exactly as matched
	Normalized string // dd/MM/YYYY, or "" if the grammar matched but the
	// value could not be normalized (e.g. an ambiguous split)
}

// FindDates scans text (already case-folded by the caller, per spec.md's
// "case-folded text" wording) for every date matching one of the four
// separator grammars (slash, space, hyphen, point), rejecting matches whose
// year run is itself flanked by another digit (Go's RE2 engine has no
// lookaround, so this boundary check is done by hand after matching,
// emulating the source regex's (?<!\d)/(?!\d) assertions).
func FindDates(text string) []Date {
	var out []Date
	runes := []rune(text)
	for _, re := range dateGrammars {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if !digitBoundaryOK(runes, byteToRune(text, start), byteToRune(text, end)) {
				continue
			}
			raw := text[start:end]
			norm, _ := uniformDate(raw)
			out = append(out, Date{Start: start, End: end, Raw: raw, Normalized: norm})
		}
	}
	sortDatesByStart(out)
	return out
}

func byteToRune(s string, byteIdx int) int {
	return len([]rune(s[:byteIdx]))
}

// digitBoundaryOK reports whether the rune immediately before runeStart and
// immediately after runeEnd (if any) are not digits - the manual stand-in
// for the original grammar's (?<!\d)...(?!\d) lookaround.
func digitBoundaryOK(runes []rune, runeStart, runeEnd int) bool {
	if runeStart > 0 && isDigit(runes[runeStart-1]) {
		return false
	}
	if runeEnd < len(runes) && isDigit(runes[runeEnd]) {
		return false
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func sortDatesByStart(d []Date) {
	for i := 1; i < len(d); i++ {
		for j := i; j > 0 && d[j].Start < d[j-1].Start; j-- {
			d[j], d[j-1] = d[j-1], d[j]
		}
	}
}

// uniformDate converts a matched raw date string into dd/MM/YYYY. It
// reports false if the value cannot be split into exactly three
// day/month/year components, the historical behavior of the source's
// NON_ALPHA_RE split (a run of adjacent separators, e.g. a month's
// optional trailing '.', yields an extra empty component and fails the
// count check rather than being special-cased).
func uniformDate(raw string) (string, bool) {
	parts := nonAlnum.Split(raw, -1)
	if len(parts) != 3 {
		return "", false
	}

	dayDigits := ordinalMarks.ReplaceAllString(parts[0], "")
	day, err := strconv.Atoi(dayDigits)
	if err != nil {
		return "", false
	}

	month := parts[1]
	monthNum, ok := monthAliases[strings.ToLower(month)]
	if !ok {
		monthNum, err = strconv.Atoi(month)
		if err != nil {
			return "", false
		}
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}
	if year <= 99 {
		year += 2000
	}

	return fmt.Sprintf("%02d/%02d/%d", day, monthNum, year), true
}
