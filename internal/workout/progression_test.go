package workout

import (
	"testing"
	"time"
)

func ptr(f float64) *float64 { return &f }

func testProgram() Program {
	return Program{
		ID:          "prog-1",
		DaysPerWeek: 3,
		Days: []ProgramDay{
			{
				DayIndex: 0,
				Label:    "Push Day",
				Exercises: []Exercise{
					{ID: "bench_press", Name: "Bench Press", SuggestedWeightKg: ptr(60), SuggestedReps: 8, SuggestedSets: 3, RestSeconds: 120},
					{ID: "incline_press", Name: "Incline Dumbbell Press", SuggestedWeightKg: ptr(22.5), SuggestedReps: 10, SuggestedSets: 3, RestSeconds: 90},
					{ID: "pushup", Name: "Push Up", Equipment: EquipmentBodyweight, SuggestedReps: 15, SuggestedSets: 3, RestSeconds: 60},
				},
			},
		},
	}
}

func sessionWithLogs(logs ...SetLog) Session {
	return Session{
		ID:        "s1",
		DayLabel:  "Push Day",
		Logs:      logs,
		StartedAt: time.Now(),
	}
}

func suggested(t *testing.T, p Program, exerciseID string) *float64 {
	t.Helper()
	for _, day := range p.Days {
		for _, ex := range day.Exercises {
			if ex.ID == exerciseID {
				return ex.SuggestedWeightKg
			}
		}
	}
	t.Fatalf("exercise %q not found in program", exerciseID)
	return nil
}

func TestApplyProgression(t *testing.T) {
	tests := []struct {
		name     string
		sessions []Session
		wantKg   map[string]float64 // expected suggested weight after progression
	}{
		{
			name:     "no sessions leaves program unchanged",
			sessions: nil,
			wantKg:   map[string]float64{"bench_press": 60, "incline_press": 22.5},
		},
		{
			name: "heavy lift gets +5 at threshold",
			sessions: []Session{
				sessionWithLogs(SetLog{ExerciseID: "bench_press", SetIndex: 0, WeightKg: ptr(60), RepsCompleted: 8}),
			},
			wantKg: map[string]float64{"bench_press": 65, "incline_press": 22.5},
		},
		{
			name: "light lift gets +2.5 below threshold",
			sessions: []Session{
				sessionWithLogs(SetLog{ExerciseID: "incline_press", SetIndex: 0, WeightKg: ptr(22.5), RepsCompleted: 10}),
			},
			wantKg: map[string]float64{"bench_press": 60, "incline_press": 25},
		},
		{
			name: "logs without weight carry no signal",
			sessions: []Session{
				sessionWithLogs(SetLog{ExerciseID: "bench_press", SetIndex: 0, RepsCompleted: 8}),
			},
			wantKg: map[string]float64{"bench_press": 60, "incline_press": 22.5},
		},
		{
			name: "unknown exercise ids are ignored",
			sessions: []Session{
				sessionWithLogs(SetLog{ExerciseID: "deadlift", SetIndex: 0, WeightKg: ptr(100), RepsCompleted: 5}),
			},
			wantKg: map[string]float64{"bench_press": 60, "incline_press": 22.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := testProgram()
			got := ApplyProgression(program, tt.sessions)
			for id, want := range tt.wantKg {
				w := suggested(t, got, id)
				if w == nil || *w != want {
					t.Errorf("exercise %s suggested weight = %v, want %v", id, w, want)
				}
			}
		})
	}
}

func TestApplyProgressionBodyweightUntouched(t *testing.T) {
	sessions := []Session{
		sessionWithLogs(SetLog{ExerciseID: "pushup", SetIndex: 0, WeightKg: ptr(10), RepsCompleted: 15}),
	}
	got := ApplyProgression(testProgram(), sessions)
	if w := suggested(t, got, "pushup"); w != nil {
		t.Errorf("bodyweight exercise gained a suggested weight: %v", *w)
	}
}

func TestApplyProgressionUsesThreeMostRecentSessions(t *testing.T) {
	recent := []Session{
		sessionWithLogs(SetLog{ExerciseID: "bench_press", SetIndex: 0, WeightKg: ptr(60), RepsCompleted: 8}),
		sessionWithLogs(),
		sessionWithLogs(),
	}
	base := ApplyProgression(testProgram(), recent)

	// Prepending older sessions with other exercises must not change the result
	older := []Session{
		sessionWithLogs(SetLog{ExerciseID: "incline_press", SetIndex: 0, WeightKg: ptr(22.5), RepsCompleted: 10}),
		sessionWithLogs(SetLog{ExerciseID: "incline_press", SetIndex: 1, WeightKg: ptr(22.5), RepsCompleted: 10}),
	}
	got := ApplyProgression(testProgram(), append(older, recent...))

	for _, id := range []string{"bench_press", "incline_press"} {
		a, b := suggested(t, base, id), suggested(t, got, id)
		if (a == nil) != (b == nil) || (a != nil && *a != *b) {
			t.Errorf("exercise %s: older sessions changed progression: %v vs %v", id, a, b)
		}
	}
	if w := suggested(t, got, "incline_press"); w == nil || *w != 22.5 {
		t.Errorf("incline_press = %v, want 22.5 (signal outside window)", w)
	}
}

func TestApplyProgressionThresholdUsesPreAdjustmentValue(t *testing.T) {
	program := testProgram()
	program.Days[0].Exercises[1].SuggestedWeightKg = ptr(57.5)
	sessions := []Session{
		sessionWithLogs(SetLog{ExerciseID: "incline_press", SetIndex: 0, WeightKg: ptr(57.5), RepsCompleted: 10}),
	}
	got := ApplyProgression(program, sessions)
	if w := suggested(t, got, "incline_press"); w == nil || *w != 60 {
		t.Errorf("57.5kg lift = %v after progression, want 60 (+2.5, below threshold before bump)", w)
	}
}

func TestApplyProgressionDoesNotAliasInput(t *testing.T) {
	program := testProgram()
	sessions := []Session{
		sessionWithLogs(SetLog{ExerciseID: "bench_press", SetIndex: 0, WeightKg: ptr(60), RepsCompleted: 8}),
	}
	got := ApplyProgression(program, sessions)

	if w := suggested(t, program, "bench_press"); w == nil || *w != 60 {
		t.Fatalf("input program mutated: bench_press = %v", w)
	}
	*got.Days[0].Exercises[0].SuggestedWeightKg = 999
	if w := suggested(t, program, "bench_press"); *w != 60 {
		t.Errorf("output aliases input: bench_press = %v after writing to copy", *w)
	}
}
