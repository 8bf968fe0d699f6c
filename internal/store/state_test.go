package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"gymbuddy/internal/workout"
)

// setupTestDB creates an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &DB{sqlDB}
}

func TestStateRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	if v, err := db.GetState("missing"); err != nil || v != "" {
		t.Errorf("GetState(missing) = %q, %v; want empty, nil", v, err)
	}

	if err := db.SetState("k", "v1"); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	if v, _ := db.GetState("k"); v != "v1" {
		t.Errorf("GetState = %q, want v1", v)
	}

	// Upsert overwrites
	if err := db.SetState("k", "v2"); err != nil {
		t.Fatalf("SetState overwrite: %v", err)
	}
	if v, _ := db.GetState("k"); v != "v2" {
		t.Errorf("GetState after overwrite = %q, want v2", v)
	}

	if err := db.RemoveState("k"); err != nil {
		t.Fatalf("RemoveState: %v", err)
	}
	if v, _ := db.GetState("k"); v != "" {
		t.Errorf("GetState after remove = %q, want empty", v)
	}
}

func TestSnapshotFirstRun(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LoadSnapshot()
	if !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("LoadSnapshot on empty db = %v, want ErrNoSnapshot", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	weight := 60.0
	snap := &Snapshot{
		Profile: &workout.UserProfile{
			Gender:              "male",
			Age:                 30,
			HeightCm:            180,
			Equipment:           workout.EquipmentFullGym,
			Goal:                workout.GoalMuscle,
			TrainingDaysPerWeek: 3,
		},
		Program: &workout.Program{
			ID:          "prog-1",
			DaysPerWeek: 3,
			Days: []workout.ProgramDay{
				{Label: "Push Day", Exercises: []workout.Exercise{
					{ID: "bench_press", Name: "Bench Press", SuggestedWeightKg: &weight, SuggestedSets: 3, SuggestedReps: 8},
				}},
			},
		},
		PastSessions: []workout.Session{
			{ID: "s1", DayLabel: "Push Day", StartedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		},
		OnboardingComplete: true,
	}

	if err := db.SaveSnapshot(snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := db.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !got.OnboardingComplete {
		t.Error("OnboardingComplete not persisted")
	}
	if got.Profile == nil || got.Profile.Goal != workout.GoalMuscle {
		t.Errorf("profile = %+v, want muscle goal", got.Profile)
	}
	if got.Program == nil || got.Program.ID != "prog-1" {
		t.Errorf("program = %+v, want prog-1", got.Program)
	}
	if len(got.PastSessions) != 1 || got.PastSessions[0].ID != "s1" {
		t.Errorf("sessions = %+v, want one session s1", got.PastSessions)
	}

	ex := got.Program.Days[0].Exercises[0]
	if ex.SuggestedWeightKg == nil || *ex.SuggestedWeightKg != 60 {
		t.Errorf("suggested weight = %v, want 60", ex.SuggestedWeightKg)
	}
}

func TestClearSnapshot(t *testing.T) {
	db := setupTestDB(t)

	if err := db.SaveSnapshot(&Snapshot{OnboardingComplete: true}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := db.ClearSnapshot(); err != nil {
		t.Fatalf("ClearSnapshot: %v", err)
	}
	if _, err := db.LoadSnapshot(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("LoadSnapshot after clear = %v, want ErrNoSnapshot", err)
	}
}

func TestPendingOpsQueue(t *testing.T) {
	db := setupTestDB(t)

	id1, err := db.EnqueueOp(OpLogSet, `{"exercise_id":"bench_press"}`)
	if err != nil {
		t.Fatalf("EnqueueOp: %v", err)
	}
	id2, err := db.EnqueueOp(OpFinishWorkout, `{"workout_id":"wk-1"}`)
	if err != nil {
		t.Fatalf("EnqueueOp: %v", err)
	}

	ops, err := db.PendingOps(10)
	if err != nil {
		t.Fatalf("PendingOps: %v", err)
	}
	if len(ops) != 2 || ops[0].ID != id1 || ops[1].ID != id2 {
		t.Fatalf("ops = %+v, want two in FIFO order", ops)
	}
	if ops[0].Kind != OpLogSet {
		t.Errorf("first op kind = %q, want %q", ops[0].Kind, OpLogSet)
	}

	if err := db.BumpOpAttempts(id1); err != nil {
		t.Fatalf("BumpOpAttempts: %v", err)
	}
	ops, _ = db.PendingOps(10)
	if ops[0].Attempts != 1 {
		t.Errorf("attempts = %d, want 1", ops[0].Attempts)
	}

	if err := db.CompleteOp(id1); err != nil {
		t.Fatalf("CompleteOp: %v", err)
	}
	if n, _ := db.CountPendingOps(); n != 1 {
		t.Errorf("queue depth = %d, want 1", n)
	}
}
