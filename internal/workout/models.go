package workout

import "time"

// Goal is the training objective selected during onboarding
type Goal string

const (
	GoalMuscle   Goal = "muscle"
	GoalFatLoss  Goal = "fat_loss"
	GoalStrength Goal = "strength"
	GoalFitness  Goal = "fitness"
)

// Equipment is the class of equipment available to the user
type Equipment string

const (
	EquipmentFullGym    Equipment = "full_gym"
	EquipmentDumbbells  Equipment = "dumbbells"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentAny        Equipment = "any"
)

// UserProfile holds the onboarding answers a program is generated from.
// It is immutable once submitted; a new profile requires re-onboarding.
type UserProfile struct {
	Gender              string    `json:"gender"`
	Age                 int       `json:"age"`
	HeightCm            float64   `json:"heightCm"`
	WeightKg            *float64  `json:"weightKg,omitempty"`
	Equipment           Equipment `json:"equipment"`
	Goal                Goal      `json:"goal"`
	TrainingDaysPerWeek int       `json:"trainingDaysPerWeek"`
}

// StrengthEstimate holds optional self-reported strength numbers used to
// seed suggested weights
type StrengthEstimate struct {
	BenchPressKg    *float64 `json:"benchPressKg,omitempty"`
	SquatKg         *float64 `json:"squatKg,omitempty"`
	DeadliftKg      *float64 `json:"deadliftKg,omitempty"`
	LatPulldownKg   *float64 `json:"latPulldownKg,omitempty"`
	DumbbellPressKg *float64 `json:"dumbbellPressKg,omitempty"`
	DumbbellRowKg   *float64 `json:"dumbbellRowKg,omitempty"`
	GobletSquatKg   *float64 `json:"gobletSquatKg,omitempty"`
	MaxPushups      *int     `json:"maxPushups,omitempty"`
	MaxPullups      *int     `json:"maxPullups,omitempty"`
	PlankSeconds    *int     `json:"plankSeconds,omitempty"`
}

// Exercise is one program-level exercise. SuggestedWeightKg is nil for
// bodyweight exercises and is the only field progression ever changes.
type Exercise struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Equipment         Equipment `json:"equipment"`
	SuggestedWeightKg *float64  `json:"suggestedWeightKg,omitempty"`
	SuggestedReps     int       `json:"suggestedReps"`
	SuggestedSets     int       `json:"suggestedSets"`
	RestSeconds       int       `json:"restSeconds"`
}

// ProgramDay is one day's ordered exercise list. Exercise IDs are unique
// within a day and list order is display and iteration order.
type ProgramDay struct {
	DayIndex  int        `json:"dayIndex"`
	Label     string     `json:"label"`
	Exercises []Exercise `json:"exercises"`
}

// Program is the multi-day training plan generated from a profile.
// It is created once and afterwards mutated only by progression.
type Program struct {
	ID          string       `json:"id"`
	DaysPerWeek int          `json:"daysPerWeek"`
	Days        []ProgramDay `json:"days"`
}

// Clone returns a deep copy of the program. Progression works on copies so
// callers can treat their input as immutable.
func (p Program) Clone() Program {
	out := p
	out.Days = make([]ProgramDay, len(p.Days))
	for i, day := range p.Days {
		d := day
		d.Exercises = make([]Exercise, len(day.Exercises))
		for j, ex := range day.Exercises {
			e := ex
			if ex.SuggestedWeightKg != nil {
				w := *ex.SuggestedWeightKg
				e.SuggestedWeightKg = &w
			}
			d.Exercises[j] = e
		}
		out.Days[i] = d
	}
	return out
}

// SetLog records reps and weight for one set of one exercise within a
// session. A set counts as complete when RepsCompleted > 0.
type SetLog struct {
	ExerciseID    string    `json:"exerciseId"`
	SetIndex      int       `json:"setIndex"`
	WeightKg      *float64  `json:"weightKg,omitempty"`
	RepsCompleted int       `json:"repsCompleted"`
	Timestamp     time.Time `json:"timestamp"`
}

// Completed reports whether any reps were logged for the set
func (l SetLog) Completed() bool {
	return l.RepsCompleted > 0
}

// Session is one performance of a day plan. The log slice is fully
// populated at start (one entry per planned set) and never changes length.
type Session struct {
	ID         string    `json:"id"`
	DayLabel   string    `json:"dayLabel"`
	Logs       []SetLog  `json:"logs"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	FromRemote bool      `json:"fromRemote,omitempty"`
}

// Summary holds the derived totals for a session
type Summary struct {
	CompletedSets int
	TotalReps     int
	TotalVolumeKg float64
}

// Summarize recomputes the session totals from the log sequence
func (s *Session) Summarize() Summary {
	var sum Summary
	for _, l := range s.Logs {
		if l.Completed() {
			sum.CompletedSets++
		}
		sum.TotalReps += l.RepsCompleted
		if l.WeightKg != nil {
			sum.TotalVolumeKg += *l.WeightKg * float64(l.RepsCompleted)
		}
	}
	return sum
}

// completedSetsFor counts completed sets belonging to one exercise
func (s *Session) completedSetsFor(exerciseID string) int {
	n := 0
	for _, l := range s.Logs {
		if l.ExerciseID == exerciseID && l.Completed() {
			n++
		}
	}
	return n
}
