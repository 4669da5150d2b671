/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package tagger implements the three independent semantic classifiers
// spec.md's SemanticTaggers component runs over raw block text: pagination
// markers, French-calendar dates, and postal-address tails.
package tagger

import "strings"

// wordCount splits s on whitespace and counts the non-empty fields, the
// same notion of "word" the pagination and date tests use.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// IsPagination reports whether text is a pagination marker: word count
// strictly between 1 and 5, and the case-folded text contains "page".
func IsPagination(text string) bool {
	n := wordCount(text)
	return n > 1 && n < 5 && strings.Contains(strings.ToLower(text), "page")
}
