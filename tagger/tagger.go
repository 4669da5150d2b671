/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package tagger

import "strings"

// Kind identifies which semantic tag a block carries, when the caller
// needs a single pick rather than the independent booleans.
type Kind int

const (
	KindNone Kind = iota
	KindPagination
	KindDate
	KindAddress
)

func (k Kind) String() string {
	switch k {
	case KindPagination:
		return "page"
	case KindDate:
		return "date"
	case KindAddress:
		return "address"
	default:
		return "unk"
	}
}

// IsDate reports whether text carries the date tag: word count strictly
// between 3 and 10, and at least one grammar match in the case-folded text.
// Returns the first successfully normalized match's dd/MM/YYYY form
// alongside the boolean; a match whose literal cannot be normalized is
// skipped and never tags the block.
func IsDate(text string) (string, bool) {
	n := wordCount(text)
	if n <= 3 || n >= 10 {
		return "", false
	}
	for _, d := range FindDates(strings.ToLower(text)) {
		if d.Normalized != "" {
			return d.Normalized, true
		}
	}
	return "", false
}

// Classify applies the source's pick-one precedence (page > date > address
// > none) over a block's raw text, returning the normalized date string
// when the winning tag is KindDate. A block may in fact satisfy more than
// one tagger; IsPagination/IsDate/EndsWithPostalAddress remain
// independently callable for callers that want every tag a block carries.
func Classify(text string) (Kind, string) {
	if IsPagination(text) {
		return KindPagination, ""
	}
	if date, ok := IsDate(text); ok {
		return KindDate, date
	}
	if EndsWithPostalAddress(text) {
		return KindAddress, ""
	}
	return KindNone, ""
}
