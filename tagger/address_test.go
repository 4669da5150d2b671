/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package tagger

import "testing"

func TestUniformCityName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Paris", "paris"},
		{"Saint-Étienne", "etienne"},
		{"Sainte Foy", "foy"},
	}
	for _, c := range cases {
		if got := uniformCityName(c.in); got != c.want {
			t.Errorf("uniformCityName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestScenarioS5_Address(t *testing.T) {
	text := "192 RUE DE DANTZIG, 75015 PARIS"
	if !EndsWithPostalAddress(text) {
		t.Errorf("EndsWithPostalAddress(%q) = false, want true", text)
	}
}

func TestEndsWithPostalAddress_UnknownCode(t *testing.T) {
	text := "some text, 00000 NOWHERE"
	if EndsWithPostalAddress(text) {
		t.Errorf("EndsWithPostalAddress(%q) = true, want false (unknown code)", text)
	}
}

func TestEndsWithPostalAddress_RightmostMatchOnly(t *testing.T) {
	// Only the rightmost code-shaped match is judged: a valid code/city
	// pair earlier in the block must not tag it when the text ends on a
	// code whose tail names no registered city.
	text := "Ref 69001 Lyon Paris, 75015 Berlin"
	if EndsWithPostalAddress(text) {
		t.Errorf("EndsWithPostalAddress(%q) = true, want false (rightmost code's city mismatch)", text)
	}
	text = "Ref 75015 Berlin, 69001 Lyon"
	if !EndsWithPostalAddress(text) {
		t.Errorf("EndsWithPostalAddress(%q) = false, want true (rightmost code matches)", text)
	}
}

func TestEndsWithPostalAddress_WrongCity(t *testing.T) {
	text := "192 RUE DE DANTZIG, 75015 LYON"
	if EndsWithPostalAddress(text) {
		t.Errorf("EndsWithPostalAddress(%q) = true, want false (city mismatch)", text)
	}
}
