package util

import (
	"math"
	"testing"
)

func TestASCIISet(t *testing.T) {
	cases := []struct {
		elems string
	}{
		{" \t"},
		{"?#"},
	}
	for _, tc := range cases {
		// create a reference set
		set := make(map[byte]struct{}, len(tc.elems))
		for i := range len(tc.elems) {
			set[tc.elems[i]] = struct{}{}
		}
		as := makeASCIISet(tc.elems)
		var b byte
		for ; b < math.MaxUint8; b++ {
			_, want := set[b]
			got := as.contains(b)
			if got != want {
				const tmpl = "makeASCIISet(%q).contains(%q): got %t; want %t"
				t.Errorf(tmpl, tc.elems, b, got, want)
			}
		}
	}
}

func TestIsValidPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{path: "", want: false},
		{path: "/", want: true},
		{path: "/webhooks/github", want: true},
		{path: "/oauth/callback", want: true},
		{path: "/café", want: true},
		{path: "/a%20b", want: true},
		{path: "webhooks", want: false},
		{path: "*", want: false},
		{path: "/search?q=x", want: false},
		{path: "/page#top", want: false},
		{path: "/a b", want: false},
		{path: "/a\tb", want: false},
		{path: "/a\nb", want: false},
		{path: "/a\x7f", want: false},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			got := IsValidPath(tc.path)
			if got != tc.want {
				const tmpl = "%q: got %t; want %t"
				t.Errorf(tmpl, tc.path, got, tc.want)
			}
		}
		t.Run(tc.path, f)
	}
}
