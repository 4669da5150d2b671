/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package tagger

import "testing"

func TestIsPagination(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"page 1", true},
		{"Page 12", true},
		{"Facture du 25/12/19 page 1", false}, // 5 words, not < 5
		{"page", false},                       // word count 1, not > 1
		{"no marker here at all", false},
	}
	for _, c := range cases {
		if got := IsPagination(c.text); got != c.want {
			t.Errorf("IsPagination(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}
