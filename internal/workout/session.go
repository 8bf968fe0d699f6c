package workout

import (
	"time"

	"github.com/google/uuid"
)

// Tracker owns the active-session lifecycle: no session until Start, then
// active until Finish moves the session into history. There is no paused
// state; an active session simply persists until it is finished or replaced.
type Tracker struct {
	program *Program
	current *Session
	dayPlan *ProgramDay
	history []Session

	now func() time.Time
}

// NewTracker creates a tracker over the given program and prior history.
// The program pointer is shared so progression updates are visible to the
// caller; history is copied in.
func NewTracker(program *Program, history []Session) *Tracker {
	return &Tracker{
		program: program,
		history: append([]Session(nil), history...),
		now:     time.Now,
	}
}

// Current returns the active session, or nil when none is in progress
func (t *Tracker) Current() *Session {
	return t.current
}

// DayPlan returns the day plan the active session was started from
func (t *Tracker) DayPlan() *ProgramDay {
	return t.dayPlan
}

// History returns the finished sessions, oldest first
func (t *Tracker) History() []Session {
	return t.history
}

// Resume reinstates a previously persisted active session, used on startup
// when the app was closed mid-workout.
func (t *Tracker) Resume(session *Session, dayPlan *ProgramDay) {
	t.current = session
	t.dayPlan = dayPlan
}

// Start begins a session for the given day plan. One log entry is created
// per planned set, with zero reps and the exercise's suggested weight.
// externalID is used when the remote service assigned a workout id;
// otherwise a local id is generated. Any unfinished session is discarded.
func (t *Tracker) Start(dayPlan ProgramDay, externalID string, fromRemote bool) *Session {
	now := t.now()
	id := externalID
	if id == "" {
		id = "local-" + uuid.NewString()
	}

	var logs []SetLog
	for _, ex := range dayPlan.Exercises {
		for idx := 0; idx < ex.SuggestedSets; idx++ {
			logs = append(logs, SetLog{
				ExerciseID:    ex.ID,
				SetIndex:      idx,
				WeightKg:      ex.SuggestedWeightKg,
				RepsCompleted: 0,
				Timestamp:     now,
			})
		}
	}

	t.current = &Session{
		ID:         id,
		DayLabel:   dayPlan.Label,
		Logs:       logs,
		StartedAt:  now,
		FinishedAt: now, // provisional until Finish
		FromRemote: fromRemote,
	}
	plan := dayPlan
	t.dayPlan = &plan
	return t.current
}

// LogSet records reps and weight against the matching set log. With no
// active session, or an index that matches no existing log, it is a silent
// no-op; the log sequence never grows past what Start created.
func (t *Tracker) LogSet(exerciseID string, setIndex, repsCompleted int, weightKg *float64) {
	if t.current == nil {
		return
	}
	for i := range t.current.Logs {
		l := &t.current.Logs[i]
		if l.ExerciseID == exerciseID && l.SetIndex == setIndex {
			l.RepsCompleted = repsCompleted
			l.WeightKg = weightKg
			l.Timestamp = t.now()
			return
		}
	}
}

// Finish stamps the finish time, appends the session to history, clears the
// active session and applies progression over the full updated history.
// It reports whether a session was actually finished; a second call without
// a new Start does nothing.
func (t *Tracker) Finish() bool {
	if t.current == nil {
		return false
	}
	done := *t.current
	done.FinishedAt = t.now()
	t.history = append(t.history, done)
	t.current = nil
	t.dayPlan = nil

	if t.program != nil {
		*t.program = ApplyProgression(*t.program, t.history)
	}
	return true
}

// Summary returns the derived totals for the active session
func (t *Tracker) Summary() Summary {
	if t.current == nil {
		return Summary{}
	}
	return t.current.Summarize()
}

// NextExercise returns the first exercise in day order whose completed set
// count is still below its planned sets, or nil when every exercise is done.
// A fully-logged day is complete for navigation purposes but the session
// stays active until Finish.
func (t *Tracker) NextExercise() *Exercise {
	if t.current == nil || t.dayPlan == nil {
		return nil
	}
	for i := range t.dayPlan.Exercises {
		ex := &t.dayPlan.Exercises[i]
		if t.current.completedSetsFor(ex.ID) < ex.SuggestedSets {
			return ex
		}
	}
	return nil
}
