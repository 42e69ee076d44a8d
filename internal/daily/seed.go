// Package daily derives the deterministic per-day challenge selection.
// Every client computes the same result for the same UTC calendar date, so
// no server-side coordination is needed.
package daily

import "time"

// DateString formats a time as the UTC calendar date the seed is keyed by.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed is the sum of the character codes of the UTC date string. Not
// cryptographically meaningful; it only has to be identical for everyone on
// the same day and different across days with high probability.
func Seed(t time.Time) int {
	seed := 0
	for _, c := range DateString(t) {
		seed += int(c)
	}
	return seed
}

// Select picks n candidates without replacement: each round takes the seed
// modulo the remaining-candidate count and removes the chosen entry. The
// result is an ordered, deterministic pseudo-shuffle of the candidate list.
func Select(seed int, candidates []string, n int) []string {
	remaining := append([]string(nil), candidates...)
	if n > len(remaining) {
		n = len(remaining)
	}
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := seed % len(remaining)
		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked
}

// Difficulty assigns a deterministic difficulty to the i-th selected
// challenge of the day.
func Difficulty(seed, i int, difficulties []string) string {
	return difficulties[(seed+i)%len(difficulties)]
}
