package models

import "testing"

func TestLevelForXP(t *testing.T) {
	testCases := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{1499, 2},
		{1500, 3},
		{3000, 4},
		{100000, 20},
	}

	for _, tc := range testCases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	if got := XPToNextLevel(0); got != 500 {
		t.Errorf("Expected 500 XP to level 2, got %d", got)
	}
	if got := XPToNextLevel(500); got != 1000 {
		t.Errorf("Expected 1000 XP from level 2 to 3, got %d", got)
	}
}

func TestClampGalaxyAndModule(t *testing.T) {
	testCases := []struct {
		in, wantGalaxy, wantModule int
	}{
		{-3, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
		{9, 9, 9},
		{10, 9, 10},
		{16, 9, 16},
		{99, 9, 16},
	}

	for _, tc := range testCases {
		if got := ClampGalaxy(tc.in); got != tc.wantGalaxy {
			t.Errorf("ClampGalaxy(%d) = %d, want %d", tc.in, got, tc.wantGalaxy)
		}
		if got := ClampModule(tc.in); got != tc.wantModule {
			t.Errorf("ClampModule(%d) = %d, want %d", tc.in, got, tc.wantModule)
		}
	}
}

func TestHasCompleted(t *testing.T) {
	p := NewUserProgress("0xabc")
	if p.HasCompleted("galaxy-1-module-1") {
		t.Error("Fresh progress should have nothing completed")
	}
	p.CompletedModules = append(p.CompletedModules, "galaxy-1-module-1")
	if !p.HasCompleted("galaxy-1-module-1") {
		t.Error("Expected completed module to be found")
	}
	if p.HasCompleted("galaxy-1-module-2") {
		t.Error("Unrelated module reported as completed")
	}
}
