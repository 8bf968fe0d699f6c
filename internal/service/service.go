package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gymbuddy/internal/api"
	"gymbuddy/internal/store"
	"gymbuddy/internal/workout"
)

// WorkoutService orchestrates the remote service, the local store and the
// in-memory workout state. All state mutation goes through here; the TUI
// only reads.
type WorkoutService struct {
	client *api.Client
	db     *store.DB

	profile            *workout.UserProfile
	estimate           *workout.StrengthEstimate
	program            *workout.Program
	tracker            *workout.Tracker
	onboardingComplete bool

	// Editable "today" flow
	planStore *workout.PlanStore
	workoutID string
}

// New creates a workout service over the given client and store
func New(client *api.Client, db *store.DB) *WorkoutService {
	return &WorkoutService{
		client:  client,
		db:      db,
		tracker: workout.NewTracker(nil, nil),
	}
}

// Load rehydrates persisted state. A missing snapshot means first run;
// the service stays in the needs-onboarding state.
func (s *WorkoutService) Load() error {
	snap, err := s.db.LoadSnapshot()
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	s.profile = snap.Profile
	s.estimate = snap.StrengthEstimate
	s.program = snap.Program
	s.onboardingComplete = snap.OnboardingComplete
	s.tracker = workout.NewTracker(s.program, snap.PastSessions)
	if snap.CurrentSession != nil {
		s.tracker.Resume(snap.CurrentSession, snap.CurrentDayPlan)
	}
	return nil
}

// NeedsOnboarding reports whether the user still has to complete onboarding
func (s *WorkoutService) NeedsOnboarding() bool {
	return !s.onboardingComplete
}

// Profile returns the submitted user profile, nil before onboarding
func (s *WorkoutService) Profile() *workout.UserProfile {
	return s.profile
}

// Program returns the current training program, nil before onboarding
func (s *WorkoutService) Program() *workout.Program {
	return s.program
}

// Tracker exposes the session tracker for reads
func (s *WorkoutService) Tracker() *workout.Tracker {
	return s.tracker
}

// PlanStore returns the loaded editable plan, nil until LoadToday succeeds
func (s *WorkoutService) PlanStore() *workout.PlanStore {
	return s.planStore
}

// WorkoutID returns the remote id bound to the loaded plan
func (s *WorkoutService) WorkoutID() string {
	return s.workoutID
}

// CompleteOnboarding submits the profile, stores the generated program and
// marks onboarding done. The profile is immutable afterwards; re-onboarding
// replaces it wholesale.
func (s *WorkoutService) CompleteOnboarding(ctx context.Context, profile workout.UserProfile, estimate *workout.StrengthEstimate) (*workout.Program, error) {
	req := api.ProgramInitRequest{
		Profile: api.ProfilePayload{
			Gender:       profile.Gender,
			Age:          profile.Age,
			HeightCm:     profile.HeightCm,
			WeightKg:     profile.WeightKg,
			Equipment:    string(profile.Equipment),
			Goal:         string(profile.Goal),
			TrainingDays: profile.TrainingDaysPerWeek,
		},
		Strength: strengthMap(estimate),
	}

	resp, err := s.client.InitProgram(ctx, req)
	if err != nil {
		return nil, err
	}

	program := convertProgram(resp)
	s.profile = &profile
	s.estimate = estimate
	s.program = &program
	s.onboardingComplete = true
	s.tracker = workout.NewTracker(s.program, nil)
	s.persist()
	return s.program, nil
}

// Reset discards all saved state so the user can onboard again with a new
// profile. The old program, history and any queued mirrors are gone after
// this; the next CompleteOnboarding starts from scratch.
func (s *WorkoutService) Reset() error {
	if err := s.db.ClearSnapshot(); err != nil {
		return fmt.Errorf("clearing saved state: %w", err)
	}
	if err := s.db.ClearPendingOps(); err != nil {
		return fmt.Errorf("clearing sync queue: %w", err)
	}
	s.profile = nil
	s.estimate = nil
	s.program = nil
	s.onboardingComplete = false
	s.tracker = workout.NewTracker(nil, nil)
	s.planStore = nil
	s.workoutID = ""
	return nil
}

// LoadToday fetches the editable plan for today and binds its workout id
func (s *WorkoutService) LoadToday(ctx context.Context) (*workout.PlanStore, error) {
	resp, err := s.client.TodayWorkout(ctx)
	if err != nil {
		return nil, err
	}
	s.planStore = workout.NewPlanStore(convertPlan(resp))
	s.workoutID = resp.WorkoutID
	return s.planStore, nil
}

// ToggleSet applies the local completion toggle and, when a remote workout
// id is bound, queues a best-effort log mirror. The local toggle is
// authoritative; a failed mirror never rolls it back.
func (s *WorkoutService) ToggleSet(exerciseID string, setIndex int, weightKg float64) bool {
	if s.planStore == nil {
		return false
	}
	completed := s.planStore.ToggleSet(exerciseID, setIndex, weightKg)

	if s.workoutID != "" {
		s.enqueueLogMirror(exerciseID, setIndex, weightKg, completed)
	}
	return completed
}

func (s *WorkoutService) enqueueLogMirror(exerciseID string, setIndex int, weightKg float64, completed bool) {
	var target *float64
	var sets int
	reps := ""
	for _, ex := range s.planStore.Plan().Exercises {
		if ex.ID == exerciseID {
			t := ex.TargetWeight
			target = &t
			sets = ex.Sets
			reps = ex.Reps
			break
		}
	}

	payload, err := json.Marshal(api.LogSetRequest{
		WorkoutID:    s.workoutID,
		ExerciseID:   exerciseID,
		ActualWeight: &weightKg,
		TargetWeight: target,
		Sets:         sets,
		Reps:         reps,
		Completed:    completed,
	})
	if err != nil {
		return
	}
	s.db.EnqueueOp(store.OpLogSet, string(payload))
}

func (s *WorkoutService) enqueueFinishMirror(workoutID string) {
	payload, err := json.Marshal(struct {
		WorkoutID string `json:"workout_id"`
	}{WorkoutID: workoutID})
	if err != nil {
		return
	}
	s.db.EnqueueOp(store.OpFinishWorkout, string(payload))
}

// SyncPending drains the queued remote mirrors, oldest first. It stops at
// the first failure, bumping that op's attempt count, and returns the error
// for display; the op stays queued for the next drain.
func (s *WorkoutService) SyncPending(ctx context.Context) error {
	ops, err := s.db.PendingOps(50)
	if err != nil {
		return fmt.Errorf("reading pending ops: %w", err)
	}

	for _, op := range ops {
		var syncErr error
		switch op.Kind {
		case store.OpLogSet:
			var req api.LogSetRequest
			if err := json.Unmarshal([]byte(op.Payload), &req); err != nil {
				// Unreadable payload; drop it rather than wedge the queue
				s.db.CompleteOp(op.ID)
				continue
			}
			_, syncErr = s.client.LogSet(ctx, req)
		case store.OpFinishWorkout:
			var req struct {
				WorkoutID string `json:"workout_id"`
			}
			if err := json.Unmarshal([]byte(op.Payload), &req); err != nil {
				s.db.CompleteOp(op.ID)
				continue
			}
			_, syncErr = s.client.FinishWorkout(ctx, req.WorkoutID)
		default:
			s.db.CompleteOp(op.ID)
			continue
		}

		if syncErr != nil {
			s.db.BumpOpAttempts(op.ID)
			return syncErr
		}
		s.db.CompleteOp(op.ID)
	}
	return nil
}

// PendingCount returns the sync queue depth
func (s *WorkoutService) PendingCount() int {
	n, _ := s.db.CountPendingOps()
	return n
}

// PersistPlanChanges sends the exercises flagged for swap as one update
// batch. On success every exercise's action flags are cleared, swapped or
// not. With nothing flagged it is a no-op.
func (s *WorkoutService) PersistPlanChanges(ctx context.Context) error {
	if s.planStore == nil {
		return nil
	}
	candidates := s.planStore.SwapCandidates()
	if len(candidates) == 0 {
		s.planStore.ClearActionFlags()
		return nil
	}

	req := api.UpdateWorkoutRequest{
		WorkoutID: s.workoutID,
		Day:       s.planStore.Plan().Day,
	}
	for _, ex := range candidates {
		payload := planExercisePayload(ex)
		req.Changes = append(req.Changes, api.WorkoutChange{
			ExerciseID:  ex.ID,
			Action:      "swap",
			NewExercise: &payload,
		})
	}

	if _, err := s.client.UpdateWorkout(ctx, req); err != nil {
		return err
	}
	s.planStore.ClearActionFlags()
	return nil
}

// UpdateExercise applies a plan edit by exercise id
func (s *WorkoutService) UpdateExercise(updated workout.PlanExercise) {
	if s.planStore != nil {
		s.planStore.UpdateExercise(updated)
	}
}

// StartDay begins a tracked session for one of the program's days.
// workoutID binds the session to a remote workout when known.
func (s *WorkoutService) StartDay(dayIndex int, workoutID string) (*workout.Session, error) {
	if s.program == nil {
		return nil, errors.New("no training program")
	}
	for _, day := range s.program.Days {
		if day.DayIndex == dayIndex {
			session := s.tracker.Start(day, workoutID, workoutID != "")
			s.persist()
			return session, nil
		}
	}
	return nil, fmt.Errorf("no day with index %d", dayIndex)
}

// LogSet records reps and weight for the active session
func (s *WorkoutService) LogSet(exerciseID string, setIndex, reps int, weightKg *float64) {
	s.tracker.LogSet(exerciseID, setIndex, reps, weightKg)
	s.persist()
}

// FinishWorkout ends the active session: the remote finish is mirrored
// best-effort for remote-bound sessions, then the session moves to history
// and progression runs. The returned error is the sync failure, surfaced
// for display only; a failed finish mirror is queued and retried on the
// next drain. The local finish always happens.
func (s *WorkoutService) FinishWorkout(ctx context.Context) (message string, syncErr error) {
	current := s.tracker.Current()
	if current == nil {
		return "", nil
	}

	if current.FromRemote {
		resp, err := s.client.FinishWorkout(ctx, current.ID)
		if err != nil {
			syncErr = err
			s.enqueueFinishMirror(current.ID)
		} else if resp != nil {
			message = resp.Message
		}
	}

	s.tracker.Finish()
	s.persist()
	return message, syncErr
}

// ExerciseHistory fetches logged weights for one exercise
func (s *WorkoutService) ExerciseHistory(ctx context.Context, exerciseID string) (api.HistoryResponse, error) {
	return s.client.History(ctx, exerciseID)
}

// Guide fetches form guidance for an exercise by name
func (s *WorkoutService) Guide(ctx context.Context, name string) (*api.ExerciseGuideResponse, error) {
	return s.client.ExerciseGuide(ctx, api.ExerciseGuideRequest{ExerciseName: name})
}

// persist writes the snapshot. Persistence is best-effort: a failed write
// costs at most the mutations since the last successful one.
func (s *WorkoutService) persist() {
	snap := &store.Snapshot{
		Profile:            s.profile,
		StrengthEstimate:   s.estimate,
		Program:            s.program,
		PastSessions:       s.tracker.History(),
		CurrentSession:     s.tracker.Current(),
		CurrentDayPlan:     s.tracker.DayPlan(),
		OnboardingComplete: s.onboardingComplete,
	}
	s.db.SaveSnapshot(snap)
}
