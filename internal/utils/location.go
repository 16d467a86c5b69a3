package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLocation builds the deduplication key for a place from its
// name and address: lowercased, diacritics stripped, punctuation
// dropped, whitespace runs collapsed to underscores. The same physical
// place should always map to the same key regardless of how the caller
// typed it.
func NormalizeLocation(locationName, address string) string {
	combined := strings.TrimSpace(locationName) + " " + strings.TrimSpace(address)
	combined = strings.ToLower(combined)

	// Decompose and drop combining marks (accents, Vietnamese diacritics).
	decomposed := norm.NFD.String(combined)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "_")
}

// IsSimilarLocation reports whether two location keys are near
// duplicates, using normalized Levenshtein distance against the given
// threshold (0.8 catches most typo-level variants).
func IsSimilarLocation(key1, key2 string, threshold float64) bool {
	maxLen := len(key1)
	if len(key2) > maxLen {
		maxLen = len(key2)
	}
	if maxLen == 0 {
		return true
	}
	distance := levenshtein(key1, key2)
	similarity := 1 - float64(distance)/float64(maxLen)
	return similarity >= threshold
}

func levenshtein(s1, s2 string) int {
	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 0; i < len(s1); i++ {
		curr[0] = i + 1
		for j := 0; j < len(s2); j++ {
			cost := 0
			if s1[i] != s2[j] {
				cost = 1
			}
			curr[j+1] = min3(prev[j+1]+1, curr[j]+1, prev[j]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
