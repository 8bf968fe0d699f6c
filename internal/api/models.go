package api

// Wire shapes for the workout service API. Field names follow the service's
// snake_case JSON.

// ProfilePayload is the onboarding profile sent to program init
type ProfilePayload struct {
	Gender       string   `json:"gender"`
	Age          int      `json:"age"`
	HeightCm     float64  `json:"height_cm"`
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	Equipment    string   `json:"equipment"`
	Goal         string   `json:"goal"`
	TrainingDays int      `json:"training_days"`
}

// ProgramInitRequest is the body for POST /api/program/init
type ProgramInitRequest struct {
	Profile  ProfilePayload     `json:"profile"`
	Strength map[string]float64 `json:"strength,omitempty"`
}

// ExercisePayload is a program exercise as returned by the service
type ExercisePayload struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Equipment         string   `json:"equipment"`
	SuggestedWeightKg *float64 `json:"suggested_weight_kg,omitempty"`
	SuggestedReps     int      `json:"suggested_reps"`
	SuggestedSets     int      `json:"suggested_sets"`
	RestSeconds       int      `json:"rest_seconds"`
}

// ProgramDayPayload is one generated day
type ProgramDayPayload struct {
	Day       int               `json:"day"`
	Label     string            `json:"label"`
	Exercises []ExercisePayload `json:"exercises"`
}

// ProgramInitResponse is the generated program
type ProgramInitResponse struct {
	ID          string              `json:"id"`
	DaysPerWeek int                 `json:"days_per_week"`
	Days        []ProgramDayPayload `json:"days"`
}

// ActionsPayload mirrors the per-exercise edit flags
type ActionsPayload struct {
	Swap    bool `json:"swap"`
	Edited  bool `json:"edited"`
	Removed bool `json:"removed"`
}

// PlanExercisePayload is an exercise in the editable "today" shape
type PlanExercisePayload struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Sets         int            `json:"sets"`
	Reps         string         `json:"reps"`
	TargetWeight float64        `json:"target_weight"`
	UserWeight   *float64       `json:"user_weight,omitempty"`
	Actions      ActionsPayload `json:"actions"`
}

// TodayWorkoutResponse is the body of GET /api/workout/today
type TodayWorkoutResponse struct {
	Day       string                `json:"day"`
	DayLabel  string                `json:"day_label"`
	Exercises []PlanExercisePayload `json:"exercises"`
	WorkoutID string                `json:"workout_id"`
}

// WorkoutChange is one swap entry in an update batch
type WorkoutChange struct {
	ExerciseID  string               `json:"exercise_id"`
	Action      string               `json:"action"`
	NewExercise *PlanExercisePayload `json:"new_exercise,omitempty"`
}

// UpdateWorkoutRequest is the body for PATCH /api/workout/update
type UpdateWorkoutRequest struct {
	WorkoutID string          `json:"workout_id"`
	Day       string          `json:"day,omitempty"`
	Changes   []WorkoutChange `json:"changes"`
}

// UpdateWorkoutResponse echoes the accepted changes
type UpdateWorkoutResponse struct {
	Status  string          `json:"status"`
	Changes []WorkoutChange `json:"changes,omitempty"`
}

// LogSetRequest is the body for POST /api/workout/log
type LogSetRequest struct {
	WorkoutID    string   `json:"workout_id"`
	ExerciseID   string   `json:"exercise_id"`
	ActualWeight *float64 `json:"actual_weight"`
	TargetWeight *float64 `json:"target_weight"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	Completed    bool     `json:"completed"`
}

// LogSetResponse is the status of a set log
type LogSetResponse struct {
	Status string `json:"status"`
}

// FinishWorkoutResponse is the body of POST /api/workout/finish
type FinishWorkoutResponse struct {
	Message  string            `json:"message,omitempty"`
	Progress map[string]string `json:"progress,omitempty"`
}

// HistoryPoint is one logged weight for an exercise
type HistoryPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// HistoryResponse maps exercise id to its logged weights, oldest first
type HistoryResponse map[string][]HistoryPoint

// ExerciseGuideRequest is the body for POST /api/exercise/guide
type ExerciseGuideRequest struct {
	ExerciseName string `json:"exercise_name,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// ExerciseGuideResponse is the guide content for one exercise
type ExerciseGuideResponse struct {
	Muscles  []string       `json:"muscles"`
	Steps    []string       `json:"steps"`
	Mistakes []string       `json:"mistakes"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
