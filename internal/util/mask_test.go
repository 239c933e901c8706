package util

import "testing"

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"example@domain.com": "e…e@d…n.com",
		"a@b":                "a…@b…",
		"invalid-email":      "i…l",
		"ab":                 "a…",
		"x@y@zeta.io":        "x…@z…a.io",
	}
	for in, want := range cases {
		if got := MaskEmail(in); got != want {
			t.Fatalf("MaskEmail(%q) = %q, want %q", in, got, want)
		}
	}
}
