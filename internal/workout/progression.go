package workout

// Progression increments. Heavier lifts move in larger jumps.
const (
	heavyThresholdKg = 60
	heavyIncrementKg = 5
	lightIncrementKg = 2.5
)

// recentSessionWindow is how many finished sessions progression looks at
const recentSessionWindow = 3

// ApplyProgression returns a copy of the program with suggested weights
// bumped for every exercise that had any weight logged in the most recent
// sessions. Exercises without a suggested weight (bodyweight) and exercises
// with no recent logs are left unchanged. The input program is not mutated.
//
// The accumulated weight is only a participation signal: any non-zero sum
// earns the same fixed increment, +5kg at or above 60kg, +2.5kg below.
func ApplyProgression(program Program, sessions []Session) Program {
	recent := sessions
	if len(recent) > recentSessionWindow {
		recent = recent[len(recent)-recentSessionWindow:]
	}

	trained := make(map[string]float64)
	for _, session := range recent {
		for _, l := range session.Logs {
			if l.WeightKg != nil {
				trained[l.ExerciseID] += *l.WeightKg
			}
		}
	}

	out := program.Clone()
	for i := range out.Days {
		for j := range out.Days[i].Exercises {
			ex := &out.Days[i].Exercises[j]
			if trained[ex.ID] == 0 || ex.SuggestedWeightKg == nil {
				continue
			}
			bump := float64(lightIncrementKg)
			if *ex.SuggestedWeightKg >= heavyThresholdKg {
				bump = heavyIncrementKg
			}
			*ex.SuggestedWeightKg += bump
		}
	}
	return out
}
