// Package fuzz implements the 0-100 similarity scores used for player and
// club matching. Scores are Levenshtein-based; PartialRatio tolerates
// substring overlaps, e.g. "barcelona" inside "rumors linking him to fc
// barcelona".
package fuzz

import (
	"github.com/antzucaro/matchr"
)

// Ratio returns the Levenshtein similarity of a and b scaled to 0..100.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 100
	}
	distance := matchr.Levenshtein(string(ra), string(rb))
	return ((longest - distance) * 100) / longest
}

// PartialRatio slides the shorter string across every equal-length window
// of the longer one and returns the best Ratio found.
func PartialRatio(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		if len(rb) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	for start := 0; start+len(ra) <= len(rb); start++ {
		window := string(rb[start : start+len(ra)])
		score := Ratio(string(ra), window)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}
