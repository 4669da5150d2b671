/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package tagger

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/giahung24/ccm-migration/codepostal"
)

// postalCodeRe finds a French postal code: two digits, an optional space or
// hyphen, three digits not followed by another digit, preceded by a space
// or comma (the separator that sets it apart from a preceding word).
var postalCodeRe = regexp.MustCompile(`[ ,](\d{2}[ -]?\d{3})(?:\D|$)`)

var cityCleanRe = regexp.MustCompile(`(?i)(\d+|-|'|ste?\b|sainte?\b)`)
var multiSpaceRe = regexp.MustCompile(`\s+`)

// deaccent strips combining diacritical marks via Unicode NFKD
// decomposition, the Go idiom for the source's accent-folding step (there
// is no stdlib equivalent; golang.org/x/text/unicode/norm is the ecosystem
// tool for this).
var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldAccents(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}

// uniformCityName lower-cases, de-accents, strips digits/hyphens/
// apostrophes/"ste"/"sainte" tokens, and collapses whitespace - the
// normalization both the dictionary's city names and the candidate tail of
// text are put through before comparison.
func uniformCityName(s string) string {
	s = foldAccents(strings.ToLower(s))
	s = cityCleanRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// EndsWithPostalAddress reports whether text's rightmost postal-code match
// is a known code whose tail (the text after the code) contains one of that
// code's registered city names, with at most two extra tokens of slack.
func EndsWithPostalAddress(text string) bool {
	return endsWithPostalAddressIn(text, codepostal.Default)
}

func endsWithPostalAddressIn(text string, table codepostal.Table) bool {
	collapsed := multiSpaceRe.ReplaceAllString(strings.ReplaceAll(text, "\n", " "), " ")
	matches := postalCodeRe.FindAllStringSubmatchIndex(collapsed, -1)
	if len(matches) == 0 {
		return false
	}
	// Only the rightmost match counts: an address block ends with its
	// postal line, so an earlier code-shaped number (a reference, an
	// account) must not stand in for it.
	m := matches[len(matches)-1]
	codeStart, codeEnd := m[2], m[3]
	code := strings.ReplaceAll(collapsed[codeStart:codeEnd], " ", "")
	code = strings.ReplaceAll(code, "-", "")
	entries, ok := table.Lookup(code)
	if !ok {
		return false
	}
	tail := uniformCityName(collapsed[codeEnd:])
	for _, e := range entries {
		if cityWithinSlack(tail, uniformCityName(e.Normalized)) {
			return true
		}
	}
	return false
}

// cityWithinSlack reports whether city's tokens appear, in order, within
// tail, such that tail has at most two tokens beyond what the city needs.
func cityWithinSlack(tail, city string) bool {
	if city == "" {
		return false
	}
	if !strings.Contains(tail, city) {
		return false
	}
	slack := len(strings.Fields(tail)) - len(strings.Fields(city))
	return slack <= 2
}
