package service

import (
	"gymbuddy/internal/api"
	"gymbuddy/internal/workout"
)

// convertProgram converts a program init response to the domain program
func convertProgram(resp *api.ProgramInitResponse) workout.Program {
	program := workout.Program{
		ID:          resp.ID,
		DaysPerWeek: resp.DaysPerWeek,
	}
	for _, day := range resp.Days {
		d := workout.ProgramDay{
			DayIndex: day.Day,
			Label:    day.Label,
		}
		for _, ex := range day.Exercises {
			d.Exercises = append(d.Exercises, convertExercise(ex))
		}
		program.Days = append(program.Days, d)
	}
	return program
}

func convertExercise(ex api.ExercisePayload) workout.Exercise {
	out := workout.Exercise{
		ID:            ex.ID,
		Name:          ex.Name,
		Equipment:     workout.Equipment(ex.Equipment),
		SuggestedReps: ex.SuggestedReps,
		SuggestedSets: ex.SuggestedSets,
		RestSeconds:   ex.RestSeconds,
	}
	if ex.SuggestedWeightKg != nil {
		w := *ex.SuggestedWeightKg
		out.SuggestedWeightKg = &w
	}
	return out
}

// convertPlan converts a today-workout response to the editable plan shape
func convertPlan(resp *api.TodayWorkoutResponse) workout.Plan {
	plan := workout.Plan{
		Day:  resp.DayLabel,
		Goal: resp.Day,
	}
	if plan.Day == "" {
		plan.Day = resp.Day
	}
	for _, ex := range resp.Exercises {
		plan.Exercises = append(plan.Exercises, convertPlanExercise(ex))
	}
	return plan
}

func convertPlanExercise(ex api.PlanExercisePayload) workout.PlanExercise {
	out := workout.PlanExercise{
		ID:           ex.ID,
		Name:         ex.Name,
		Sets:         ex.Sets,
		Reps:         ex.Reps,
		TargetWeight: ex.TargetWeight,
		Actions: workout.ExerciseActions{
			Swap:    ex.Actions.Swap,
			Edited:  ex.Actions.Edited,
			Removed: ex.Actions.Removed,
		},
	}
	if ex.UserWeight != nil {
		w := *ex.UserWeight
		out.UserWeight = &w
	}
	return out
}

func planExercisePayload(ex workout.PlanExercise) api.PlanExercisePayload {
	out := api.PlanExercisePayload{
		ID:           ex.ID,
		Name:         ex.Name,
		Sets:         ex.Sets,
		Reps:         ex.Reps,
		TargetWeight: ex.TargetWeight,
		Actions: api.ActionsPayload{
			Swap:    ex.Actions.Swap,
			Edited:  ex.Actions.Edited,
			Removed: ex.Actions.Removed,
		},
	}
	if ex.UserWeight != nil {
		w := *ex.UserWeight
		out.UserWeight = &w
	}
	return out
}

// strengthMap flattens the estimate into the wire's lift-name keyed map
func strengthMap(est *workout.StrengthEstimate) map[string]float64 {
	if est == nil {
		return nil
	}
	out := make(map[string]float64)
	put := func(key string, v *float64) {
		if v != nil {
			out[key] = *v
		}
	}
	put("bench_press_kg", est.BenchPressKg)
	put("squat_kg", est.SquatKg)
	put("deadlift_kg", est.DeadliftKg)
	put("lat_pulldown_kg", est.LatPulldownKg)
	put("dumbbell_press_kg", est.DumbbellPressKg)
	put("dumbbell_row_kg", est.DumbbellRowKg)
	put("goblet_squat_kg", est.GobletSquatKg)
	if est.MaxPushups != nil {
		out["max_pushups"] = float64(*est.MaxPushups)
	}
	if est.MaxPullups != nil {
		out["max_pullups"] = float64(*est.MaxPullups)
	}
	if est.PlankSeconds != nil {
		out["plank_seconds"] = float64(*est.PlankSeconds)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
