/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package geom

import "testing"

func TestUnion(t *testing.T) {
	a := Rect{Llx: 0, Lly: 0, Urx: 10, Ury: 10}
	b := Rect{Llx: 5, Lly: -5, Urx: 20, Ury: 8}
	got := Union(a, b)
	want := Rect{Llx: 0, Lly: -5, Urx: 20, Ury: 10}
	if got != want {
		t.Errorf("Union(%v, %v) = %v, want %v", a, b, got, want)
	}
}

func TestOverlapY(t *testing.T) {
	cases := []struct {
		a, b Rect
		want bool
	}{
		{Rect{0, 0, 10, 5}, Rect{5, 0, 15, 5}, true},
		{Rect{0, 0, 10, 5}, Rect{20, 0, 30, 5}, false},
		{Rect{5, 0, 15, 5}, Rect{0, 0, 10, 5}, true}, // order shouldn't matter
	}
	for _, c := range cases {
		if got := OverlapY(c.a, c.b); got != c.want {
			t.Errorf("OverlapY(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestColumnGap(t *testing.T) {
	a := Rect{Llx: 0, Lly: 0, Urx: 10, Ury: 10} // height 10
	b := Rect{Llx: 40, Lly: 0, Urx: 50, Ury: 10}
	if !ColumnGap(a, b, 3) {
		t.Errorf("expected gap of 30 to satisfy ratio 3 * height 10")
	}
	c := Rect{Llx: 20, Lly: 0, Urx: 30, Ury: 10}
	if ColumnGap(a, c, 3) {
		t.Errorf("expected gap of 10 to not satisfy ratio 3 * height 10")
	}
}

func TestReflectY(t *testing.T) {
	r := Rect{Llx: 1, Lly: 2, Urx: 3, Ury: 4}
	got := ReflectY(100, r)
	want := Rect{Llx: 1, Lly: 96, Urx: 3, Ury: 98}
	if got != want {
		t.Errorf("ReflectY = %v, want %v", got, want)
	}
}
