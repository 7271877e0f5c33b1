// ABOUTME: String normalization and similarity helpers for the index
// ABOUTME: Shared by the query layer and used as a reference oracle in tests

package strutil

import "strings"

// Normalize lowercases in and drops every byte outside [a-z0-9]. The index
// operates on normalized text so that lookups are case- and
// punctuation-insensitive.
func Normalize(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Substrings returns the set of all non-empty substrings of str. Quadratic in
// time and space; meant as an oracle over small test inputs.
func Substrings(str string) map[string]struct{} {
	set := make(map[string]struct{})
	for l := 1; l <= len(str); l++ {
		for start := 0; start+l <= len(str); start++ {
			set[str[start:start+l]] = struct{}{}
		}
	}
	return set
}

// Similar reports whether 2*lcs/(len(s1)+len(s2)) exceeds ratio, where lcs is
// the length of the longest common substring of s1 and s2.
func Similar(s1, s2 string, ratio float64) bool {
	lcs := LongestCommonSubstringLength(s1, s2)
	return 2*float64(lcs)/float64(len(s1)+len(s2)) > ratio
}

// LongestCommonSubstringLength computes the length of the longest contiguous
// substring present in both s and t by dynamic programming over two rows.
func LongestCommonSubstringLength(s, t string) int {
	if len(s) == 0 || len(t) == 0 {
		return 0
	}

	prev := make([]int, len(t))
	cur := make([]int, len(t))
	longest := 0

	for i := 0; i < len(s); i++ {
		for j := 0; j < len(t); j++ {
			if s[i] != t[j] {
				cur[j] = 0
				continue
			}
			if i == 0 || j == 0 {
				cur[j] = 1
			} else {
				cur[j] = prev[j-1] + 1
			}
			if cur[j] > longest {
				longest = cur[j]
			}
		}
		prev, cur = cur, prev
	}
	return longest
}
