package stats_test

import (
	"testing"

	"fittrack/internal/stats"
)

func TestMacroBreakdownRoundsIndependently(t *testing.T) {
	t.Parallel()
	// 35+30+15 = 80g total: 43.75% / 37.5% / 18.75%, rounded half away
	// from zero. The components sum to 101 and that is expected.
	got := stats.MacroBreakdown(35, 30, 15)
	if got.Protein != 44 || got.Carbs != 38 || got.Fat != 19 {
		t.Fatalf("expected 44/38/19, got %d/%d/%d", got.Protein, got.Carbs, got.Fat)
	}
}

func TestMacroBreakdownZeroTotal(t *testing.T) {
	t.Parallel()
	got := stats.MacroBreakdown(0, 0, 0)
	if got.Protein != 0 || got.Carbs != 0 || got.Fat != 0 {
		t.Fatalf("expected 0/0/0 for zero total, got %+v", got)
	}
}

func TestMacroBreakdownSingleMacro(t *testing.T) {
	t.Parallel()
	got := stats.MacroBreakdown(50, 0, 0)
	if got.Protein != 100 || got.Carbs != 0 || got.Fat != 0 {
		t.Fatalf("expected 100/0/0, got %+v", got)
	}
}
