package fittrack

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// The commands share the package-level rootCmd, so these tests run
// sequentially and always pass flags explicitly.

func runCLI(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	out, err := execCLI(t, dbPath, args...)
	if err != nil {
		t.Fatalf("run %v: %v\n%s", args, err, out)
	}
	return out
}

func execCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--data", dbPath,
		"--config", filepath.Join(t.TempDir(), "no-config.toml"),
	}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWorkoutAddPersistsAcrossInvocations(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	out := runCLI(t, db, "workout", "add", "--name", "Swim Intervals", "--category", "cardio", "--duration", "35", "--calories", "300")
	if !strings.Contains(out, "Added workout ") {
		t.Fatalf("expected add confirmation, got %q", out)
	}

	out = runCLI(t, db, "workout", "list", "--category", "all", "--search", "")
	if !strings.Contains(out, "Swim Intervals") {
		t.Fatalf("expected new workout in list, got %q", out)
	}
	if !strings.Contains(out, "Full Body Blast") {
		t.Fatalf("expected seed catalog kept, got %q", out)
	}
}

func TestWorkoutListSearchFilters(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	out := runCLI(t, db, "workout", "list", "--category", "all", "--search", "burpees")
	if !strings.Contains(out, "HIIT Cardio") {
		t.Fatalf("expected exercise-name match, got %q", out)
	}
	if strings.Contains(out, "Core Crusher") {
		t.Fatalf("expected non-matching workouts filtered out, got %q", out)
	}
}

func TestWorkoutCompleteShowsInWeekSummary(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	runCLI(t, db, "workout", "complete", "1", "--date", "2025-06-11")
	out := runCLI(t, db, "today", "--date", "2025-06-11")
	if !strings.Contains(out, "This week: 1 workouts | 350 kcal burned") {
		t.Fatalf("expected completion in week summary, got %q", out)
	}
}

func TestWorkoutCompleteUnknownID(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	out, err := execCLI(t, db, "workout", "complete", "999", "--date", "2025-06-11")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got err=%v out=%q", err, out)
	}
}

func TestMealConsumeScalesDailyNutrition(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	// Protein Breakfast: 450 kcal, 35g protein per serving.
	runCLI(t, db, "meal", "consume", "1", "--qty", "2", "--date", "2025-06-11")
	out := runCLI(t, db, "today", "--date", "2025-06-11")
	if !strings.Contains(out, "Consumed: 900 kcal | P 70.0g") {
		t.Fatalf("expected scaled nutrition totals, got %q", out)
	}
	if !strings.Contains(out, "Remaining: 1100 kcal") {
		t.Fatalf("expected remaining against default target, got %q", out)
	}
}

func TestMealConsumeRejectsNegativeQuantity(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	if _, err := execCLI(t, db, "meal", "consume", "1", "--qty", "-1", "--date", "2025-06-11"); err == nil {
		t.Fatalf("expected quantity validation error")
	}
}

func TestHabitToggleUpdatesProgress(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	// Morning Workout starts the week with 2 of 5 days checked.
	runCLI(t, db, "habit", "toggle", "1", "--day", "5")
	out := runCLI(t, db, "habit", "list")
	if !strings.Contains(out, "3/5") {
		t.Fatalf("expected 3 checked days, got %q", out)
	}
	if !strings.Contains(out, "60%") {
		t.Fatalf("expected 60%% day completion rate, got %q", out)
	}
}

func TestHabitEditKeepsWeekProgress(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	runCLI(t, db, "habit", "edit", "1", "--name", "Evening Workout", "--target", "3", "--icon", "")
	out := runCLI(t, db, "habit", "list")
	if !strings.Contains(out, "Evening Workout") {
		t.Fatalf("expected renamed habit, got %q", out)
	}
	if !strings.Contains(out, "2/3") {
		t.Fatalf("expected check-ins kept against new target, got %q", out)
	}
}

func TestProfileSetPartialUpdate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	runCLI(t, db, "profile", "set", "--weight", "77.5")
	out := runCLI(t, db, "profile", "show")
	if !strings.Contains(out, "77.5") {
		t.Fatalf("expected updated weight, got %q", out)
	}
	if !strings.Contains(out, "Alex") {
		t.Fatalf("expected untouched fields kept, got %q", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.db")
	dst := filepath.Join(dir, "dst.db")
	dump := filepath.Join(dir, "state.json")

	runCLI(t, src, "meal", "consume", "3", "--qty", "1", "--date", "2025-06-11")
	runCLI(t, src, "export", "--out", dump)
	runCLI(t, dst, "import", dump)

	out := runCLI(t, dst, "today", "--date", "2025-06-11")
	if !strings.Contains(out, "Consumed: 250 kcal") {
		t.Fatalf("expected imported consumption log, got %q", out)
	}
}
