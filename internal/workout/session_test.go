package workout

import (
	"strings"
	"testing"
	"time"
)

func testDayPlan() ProgramDay {
	return testProgram().Days[0]
}

func newTestTracker(program *Program) *Tracker {
	tr := NewTracker(program, nil)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return base }
	return tr
}

func TestStartCreatesOneLogPerPlannedSet(t *testing.T) {
	tr := newTestTracker(nil)
	session := tr.Start(testDayPlan(), "", false)

	// 3 exercises x 3 sets
	if len(session.Logs) != 9 {
		t.Fatalf("len(Logs) = %d, want 9", len(session.Logs))
	}
	if !strings.HasPrefix(session.ID, "local-") {
		t.Errorf("session ID = %q, want local- prefix", session.ID)
	}
	if session.DayLabel != "Push Day" {
		t.Errorf("DayLabel = %q, want Push Day", session.DayLabel)
	}

	first := session.Logs[0]
	if first.ExerciseID != "bench_press" || first.SetIndex != 0 {
		t.Errorf("first log = %s/%d, want bench_press/0", first.ExerciseID, first.SetIndex)
	}
	if first.WeightKg == nil || *first.WeightKg != 60 {
		t.Errorf("first log weight = %v, want suggested 60", first.WeightKg)
	}
	if first.RepsCompleted != 0 {
		t.Errorf("first log reps = %d, want 0", first.RepsCompleted)
	}

	// Bodyweight sets carry no weight
	last := session.Logs[8]
	if last.ExerciseID != "pushup" || last.WeightKg != nil {
		t.Errorf("bodyweight log = %s weight %v, want pushup with nil weight", last.ExerciseID, last.WeightKg)
	}
}

func TestStartUsesExternalID(t *testing.T) {
	tr := newTestTracker(nil)
	session := tr.Start(testDayPlan(), "wk-42", true)
	if session.ID != "wk-42" {
		t.Errorf("session ID = %q, want wk-42", session.ID)
	}
	if !session.FromRemote {
		t.Error("FromRemote = false, want true")
	}
}

func TestStartReplacesUnfinishedSession(t *testing.T) {
	tr := newTestTracker(nil)
	tr.Start(testDayPlan(), "first", false)
	tr.LogSet("bench_press", 0, 8, ptr(60))

	session := tr.Start(testDayPlan(), "second", false)
	if tr.Current().ID != "second" {
		t.Errorf("current session = %q, want second", tr.Current().ID)
	}
	if got := session.Summarize().CompletedSets; got != 0 {
		t.Errorf("new session has %d completed sets, want 0", got)
	}
	if len(tr.History()) != 0 {
		t.Errorf("discarded session landed in history: %d entries", len(tr.History()))
	}
}

func TestLogSet(t *testing.T) {
	tests := []struct {
		name       string
		exerciseID string
		setIndex   int
		wantSets   int
	}{
		{"matching log updates", "bench_press", 1, 1},
		{"out of range index ignored", "bench_press", 7, 0},
		{"unknown exercise ignored", "leg_press", 0, 0},
		{"negative index ignored", "bench_press", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(nil)
			tr.Start(testDayPlan(), "", false)

			tr.LogSet(tt.exerciseID, tt.setIndex, 8, ptr(62.5))

			if got := len(tr.Current().Logs); got != 9 {
				t.Errorf("log count changed to %d, want 9", got)
			}
			if got := tr.Summary().CompletedSets; got != tt.wantSets {
				t.Errorf("completed sets = %d, want %d", got, tt.wantSets)
			}
		})
	}
}

func TestLogSetNoActiveSession(t *testing.T) {
	tr := newTestTracker(nil)
	tr.LogSet("bench_press", 0, 8, ptr(60)) // must not panic
	if tr.Current() != nil {
		t.Error("no-session LogSet created a session")
	}
}

func TestSummary(t *testing.T) {
	tr := newTestTracker(nil)
	tr.Start(testDayPlan(), "", false)
	tr.LogSet("bench_press", 0, 8, ptr(60))
	tr.LogSet("bench_press", 1, 8, ptr(60))
	// bench_press set 2 stays at 0 reps

	sum := tr.Summary()
	if sum.CompletedSets != 2 {
		t.Errorf("CompletedSets = %d, want 2", sum.CompletedSets)
	}
	if sum.TotalReps != 16 {
		t.Errorf("TotalReps = %d, want 16", sum.TotalReps)
	}
	if sum.TotalVolumeKg != 960 {
		t.Errorf("TotalVolumeKg = %v, want 960", sum.TotalVolumeKg)
	}
}

func TestNextExercise(t *testing.T) {
	tr := newTestTracker(nil)
	tr.Start(testDayPlan(), "", false)

	if ex := tr.NextExercise(); ex == nil || ex.ID != "bench_press" {
		t.Fatalf("NextExercise = %v, want bench_press", ex)
	}

	for i := 0; i < 3; i++ {
		tr.LogSet("bench_press", i, 8, ptr(60))
	}
	if ex := tr.NextExercise(); ex == nil || ex.ID != "incline_press" {
		t.Fatalf("NextExercise after bench done = %v, want incline_press", ex)
	}

	// Finish everything
	for i := 0; i < 3; i++ {
		tr.LogSet("incline_press", i, 10, ptr(22.5))
		tr.LogSet("pushup", i, 15, nil)
	}
	if ex := tr.NextExercise(); ex != nil {
		t.Errorf("NextExercise with all sets done = %s, want nil", ex.ID)
	}
	if tr.Current() == nil {
		t.Error("completing all sets finished the session; it should stay active")
	}
}

func TestFinishMovesSessionToHistoryOnce(t *testing.T) {
	program := testProgram()
	tr := newTestTracker(&program)
	tr.Start(testDayPlan(), "", false)
	tr.LogSet("bench_press", 0, 8, ptr(60))

	if !tr.Finish() {
		t.Fatal("Finish() = false with an active session")
	}
	if tr.Current() != nil {
		t.Error("current session survived Finish")
	}
	if len(tr.History()) != 1 {
		t.Fatalf("history length = %d, want 1", len(tr.History()))
	}

	// Second finish without a new start is a no-op
	if tr.Finish() {
		t.Error("second Finish() = true, want false")
	}
	if len(tr.History()) != 1 {
		t.Errorf("history length after double finish = %d, want 1", len(tr.History()))
	}
}

func TestFinishAppliesProgression(t *testing.T) {
	program := testProgram()
	tr := newTestTracker(&program)
	tr.Start(testDayPlan(), "", false)
	tr.LogSet("bench_press", 0, 8, ptr(60))
	tr.Finish()

	if w := suggested(t, program, "bench_press"); w == nil || *w != 65 {
		t.Errorf("bench_press after finish = %v, want 65", w)
	}
	if w := suggested(t, program, "pushup"); w != nil {
		t.Errorf("bodyweight exercise gained weight after finish: %v", *w)
	}
}

func TestResume(t *testing.T) {
	tr := newTestTracker(nil)
	day := testDayPlan()
	session := &Session{ID: "wk-7", DayLabel: day.Label, StartedAt: time.Now()}

	tr.Resume(session, &day)
	if tr.Current() != session {
		t.Error("Resume did not install the session")
	}
	if ex := tr.NextExercise(); ex == nil || ex.ID != "bench_press" {
		t.Errorf("NextExercise after resume = %v, want bench_press", ex)
	}
}
