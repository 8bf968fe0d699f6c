package workout

// ExerciseActions are the pending edit flags on a plan exercise
type ExerciseActions struct {
	Swap    bool `json:"swap"`
	Edited  bool `json:"edited"`
	Removed bool `json:"removed"`
}

// PlanExercise is the simpler exercise shape used by the editable "today"
// flow. Reps is a display string ("8-12") rather than a count.
type PlanExercise struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Sets         int             `json:"sets"`
	Reps         string          `json:"reps"`
	TargetWeight float64         `json:"target_weight"`
	UserWeight   *float64        `json:"user_weight,omitempty"`
	Actions      ExerciseActions `json:"actions"`
}

// Plan is a single day's workout as delivered by the remote service
type Plan struct {
	Day       string         `json:"day"`
	Goal      string         `json:"goal"`
	Exercises []PlanExercise `json:"exercises"`
}

// planLog tracks per-set completion for one exercise as a weights array;
// a nil entry means the set has not been completed.
type planLog struct {
	exerciseID string
	weights    []*float64
}

// PlanStore tracks per-exercise set completion for a Plan. Unlike the
// session tracker's monotonic logs, completion here is a toggle.
type PlanStore struct {
	plan Plan
	logs []planLog
}

// NewPlanStore creates a store over the given plan with no sets completed
func NewPlanStore(plan Plan) *PlanStore {
	return &PlanStore{plan: plan}
}

// Plan returns the underlying plan, including removed exercises
func (p *PlanStore) Plan() Plan {
	return p.plan
}

// ActiveExercises returns the plan's exercises with removed ones filtered
// out. Removal is a soft delete; the underlying list keeps the entry.
func (p *PlanStore) ActiveExercises() []PlanExercise {
	var out []PlanExercise
	for _, ex := range p.plan.Exercises {
		if !ex.Actions.Removed {
			out = append(out, ex)
		}
	}
	return out
}

func (p *PlanStore) findExercise(id string) *PlanExercise {
	for i := range p.plan.Exercises {
		if p.plan.Exercises[i].ID == id {
			return &p.plan.Exercises[i]
		}
	}
	return nil
}

func (p *PlanStore) findLog(exerciseID string) *planLog {
	for i := range p.logs {
		if p.logs[i].exerciseID == exerciseID {
			return &p.logs[i]
		}
	}
	return nil
}

// ToggleSet flips completion of one set. An incomplete set is marked
// complete with the given weight; a complete set is cleared. Toggling
// twice with the same arguments restores the original state. It reports
// whether the set is complete after the toggle.
func (p *PlanStore) ToggleSet(exerciseID string, setIndex int, weightKg float64) bool {
	ex := p.findExercise(exerciseID)
	if ex == nil || setIndex < 0 || setIndex >= ex.Sets {
		return false
	}

	log := p.findLog(exerciseID)
	if log == nil {
		p.logs = append(p.logs, planLog{
			exerciseID: exerciseID,
			weights:    make([]*float64, ex.Sets),
		})
		log = &p.logs[len(p.logs)-1]
	}
	// Edits can grow the set count after the log was created
	for len(log.weights) < ex.Sets {
		log.weights = append(log.weights, nil)
	}

	if log.weights[setIndex] != nil {
		log.weights[setIndex] = nil
		return false
	}
	w := weightKg
	log.weights[setIndex] = &w
	return true
}

// SetCompleted reports whether a specific set is currently complete
func (p *PlanStore) SetCompleted(exerciseID string, setIndex int) bool {
	log := p.findLog(exerciseID)
	return log != nil && setIndex >= 0 && setIndex < len(log.weights) && log.weights[setIndex] != nil
}

// CompletedSetsFor counts the completed sets for one exercise
func (p *PlanStore) CompletedSetsFor(exerciseID string) int {
	log := p.findLog(exerciseID)
	if log == nil {
		return 0
	}
	n := 0
	for _, w := range log.weights {
		if w != nil {
			n++
		}
	}
	return n
}

// CompletedSets counts completed sets across all non-removed exercises
func (p *PlanStore) CompletedSets() int {
	n := 0
	for _, ex := range p.ActiveExercises() {
		n += p.CompletedSetsFor(ex.ID)
	}
	return n
}

// TotalSets counts planned sets across all non-removed exercises
func (p *PlanStore) TotalSets() int {
	n := 0
	for _, ex := range p.ActiveExercises() {
		n += ex.Sets
	}
	return n
}

// UpdateExercise replaces the plan entry matching the update's id. Unknown
// ids are ignored.
func (p *PlanStore) UpdateExercise(updated PlanExercise) {
	if ex := p.findExercise(updated.ID); ex != nil {
		*ex = updated
	}
}

// SwapCandidates returns the exercises flagged for swap, which is the batch
// sent when persisting plan changes.
func (p *PlanStore) SwapCandidates() []PlanExercise {
	var out []PlanExercise
	for _, ex := range p.plan.Exercises {
		if ex.Actions.Swap {
			out = append(out, ex)
		}
	}
	return out
}

// ClearActionFlags resets swap/edited/removed on every exercise, swapped or
// not. The upstream behavior commits all pending edits once a swap batch
// saves; kept as-is pending product clarification.
func (p *PlanStore) ClearActionFlags() {
	for i := range p.plan.Exercises {
		p.plan.Exercises[i].Actions = ExerciseActions{}
	}
}
