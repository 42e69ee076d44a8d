package daily

import (
	"testing"
	"time"
)

func TestSeedIsPureFunctionOfUTCDate(t *testing.T) {
	morning := time.Date(2025, 3, 14, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)

	if Seed(morning) != Seed(evening) {
		t.Errorf("Seed changed within the same UTC day: %d vs %d", Seed(morning), Seed(evening))
	}

	// A timezone east of UTC on the same wall-clock day must agree too.
	tokyo := time.FixedZone("JST", 9*60*60)
	local := time.Date(2025, 3, 15, 3, 0, 0, 0, tokyo) // still 2025-03-14 in UTC
	if Seed(local) != Seed(morning) {
		t.Errorf("Seed not keyed by UTC date: %d vs %d", Seed(local), Seed(morning))
	}
}

func TestSeedKnownValue(t *testing.T) {
	// "2025-01-01": sum of char codes is known and stable.
	day := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	want := 0
	for _, c := range "2025-01-01" {
		want += int(c)
	}
	if got := Seed(day); got != want {
		t.Errorf("Expected seed %d, got %d", want, got)
	}
}

func TestSeedDiffersAcrossDays(t *testing.T) {
	a := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	if Seed(a) == Seed(b) {
		t.Errorf("Expected different seeds for %v and %v", a, b)
	}
}

func TestSelectDeterministicAndWithoutReplacement(t *testing.T) {
	candidates := []string{"quiz", "flashcard-sprint", "code-puzzle", "concept-match", "true-false"}

	first := Select(123, candidates, 3)
	second := Select(123, candidates, 3)

	if len(first) != 3 {
		t.Fatalf("Expected 3 picks, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Selection not deterministic at index %d: %q vs %q", i, first[i], second[i])
		}
	}

	seen := map[string]bool{}
	for _, p := range first {
		if seen[p] {
			t.Errorf("Candidate %q picked twice", p)
		}
		seen[p] = true
	}
}

func TestSelectDoesNotMutateCandidates(t *testing.T) {
	candidates := []string{"a", "b", "c", "d"}
	Select(7, candidates, 4)
	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if candidates[i] != want[i] {
			t.Fatalf("Candidate slice mutated: %v", candidates)
		}
	}
}

func TestSelectClampsN(t *testing.T) {
	got := Select(5, []string{"a", "b"}, 10)
	if len(got) != 2 {
		t.Errorf("Expected 2 picks when only 2 candidates exist, got %d", len(got))
	}
}

func TestDifficultyCyclesDeterministically(t *testing.T) {
	diffs := []string{"easy", "medium", "hard"}
	for i := 0; i < 3; i++ {
		a := Difficulty(42, i, diffs)
		b := Difficulty(42, i, diffs)
		if a != b {
			t.Errorf("Difficulty not deterministic for index %d", i)
		}
	}
	if Difficulty(42, 0, diffs) == Difficulty(42, 1, diffs) && Difficulty(42, 1, diffs) == Difficulty(42, 2, diffs) {
		t.Error("Expected difficulty ordering to vary across indexes")
	}
}
