package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, "test-token")
	c.pacer.minInterval = 0
	return c
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(TodayWorkoutResponse{WorkoutID: "wk-1"})
	})

	if _, err := c.TodayWorkout(context.Background()); err != nil {
		t.Fatalf("TodayWorkout: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
}

func TestInitProgram(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/program/init" || r.Method != http.MethodPost {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var req ProgramInitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Profile.Goal != "muscle" {
			t.Errorf("profile goal = %q, want muscle", req.Profile.Goal)
		}
		json.NewEncoder(w).Encode(ProgramInitResponse{
			ID:          "prog-1",
			DaysPerWeek: 3,
			Days: []ProgramDayPayload{
				{Day: 0, Label: "Push Day", Exercises: []ExercisePayload{{ID: "bench_press", SuggestedSets: 3}}},
			},
		})
	})

	resp, err := c.InitProgram(context.Background(), ProgramInitRequest{
		Profile: ProfilePayload{Goal: "muscle", TrainingDays: 3},
	})
	if err != nil {
		t.Fatalf("InitProgram: %v", err)
	}
	if resp.ID != "prog-1" || len(resp.Days) != 1 {
		t.Errorf("resp = %+v, want prog-1 with one day", resp)
	}
}

func TestFinishWorkoutQueryParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("workout_id"); got != "wk-9" {
			t.Errorf("workout_id = %q, want wk-9", got)
		}
		json.NewEncoder(w).Encode(FinishWorkoutResponse{Message: "done"})
	})

	resp, err := c.FinishWorkout(context.Background(), "wk-9")
	if err != nil {
		t.Fatalf("FinishWorkout: %v", err)
	}
	if resp.Message != "done" {
		t.Errorf("message = %q, want done", resp.Message)
	}
}

func TestHistoryDecoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("exercise_id"); got != "bench_press" {
			t.Errorf("exercise_id = %q, want bench_press", got)
		}
		json.NewEncoder(w).Encode(HistoryResponse{
			"bench_press": {{Date: "2024-05-01", Weight: 60}, {Date: "2024-05-08", Weight: 62.5}},
		})
	})

	resp, err := c.History(context.Background(), "bench_press")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(resp["bench_press"]) != 2 {
		t.Errorf("history points = %d, want 2", len(resp["bench_press"]))
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"json message body", http.StatusBadRequest, `{"message":"missing workout_id"}`, "missing workout_id"},
		{"plain text body", http.StatusInternalServerError, "boom", "boom"},
		{"empty body", http.StatusBadGateway, "", "request failed with status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.TodayWorkout(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if got := apiErr.Message(); got != tt.wantMessage {
				t.Errorf("message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestLogSetPayload(t *testing.T) {
	var got LogSetRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(LogSetResponse{Status: "ok"})
	})

	w := 62.5
	_, err := c.LogSet(context.Background(), LogSetRequest{
		WorkoutID:    "wk-1",
		ExerciseID:   "bench_press",
		ActualWeight: &w,
		Sets:         3,
		Reps:         "8",
		Completed:    true,
	})
	if err != nil {
		t.Fatalf("LogSet: %v", err)
	}
	if got.ExerciseID != "bench_press" || !got.Completed || got.ActualWeight == nil || *got.ActualWeight != 62.5 {
		t.Errorf("request = %+v, want completed bench_press at 62.5", got)
	}
}
