// ABOUTME: Tests for normalization and similarity helpers
// ABOUTME: Covers Normalize filtering, substring enumeration and LCS values

package strutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "helloworld"},
		{"ABC123", "abc123"},
		{"  spaces\tand\nnewlines  ", "spacesandnewlines"},
		{"already-normal", "alreadynormal"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		got := Normalize(c.in)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSubstrings(t *testing.T) {
	set := Substrings("aba")

	want := []string{"a", "b", "ab", "ba", "aba"}
	if len(set) != len(want) {
		t.Errorf("Expected %d distinct substrings, got %d", len(want), len(set))
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			t.Errorf("Substring %q missing", w)
		}
	}
}

func TestLongestCommonSubstringLength(t *testing.T) {
	cases := []struct {
		s, t string
		want int
	}{
		{"banana", "ananas", 5},  // "anana"
		{"banana", "bandana", 3}, // "ban" / "ana"
		{"abc", "xyz", 0},
		{"", "abc", 0},
		{"same", "same", 4},
		{"carothersezealhouse", "carothersjohnhenryhouse", 9}, // "carothers"
	}

	for _, c := range cases {
		got := LongestCommonSubstringLength(c.s, c.t)
		if got != c.want {
			t.Errorf("LongestCommonSubstringLength(%q, %q) = %d, want %d", c.s, c.t, got, c.want)
		}
	}
}

func TestSimilar(t *testing.T) {
	// 2*9 / (19+23) ~= 0.43
	if !Similar("carothersezealhouse", "carothersjohnhenryhouse", 0.3) {
		t.Error("Expected the two carothers houses to be similar at 0.3")
	}
	if Similar("carothersezealhouse", "bethesda", 0.3) {
		t.Error("Expected bethesda to not be similar at 0.3")
	}
	if !Similar("same", "same", 0.99) {
		t.Error("Expected identical strings to be similar at any ratio below 1")
	}
}
