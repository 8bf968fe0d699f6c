package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is where the workout service listens during development
const DefaultBaseURL = "http://localhost:8000"

// APIError is returned for any non-2xx response. Body keeps the raw
// response for callers that want more than the message.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("API error %d", e.Status)
}

// Message extracts a human-readable message from the error body, falling
// back to the raw body when it is not the usual {"message": ...} JSON.
func (e *APIError) Message() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(e.Body), &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client talks to the workout service. Authentication is a bearer token
// injected by the oauth2 transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pacer      *Pacer
}

// NewClient creates a client for the given base URL and token
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		baseURL:    baseURL,
		httpClient: oauth2.NewClient(context.Background(), source),
		pacer:      NewPacer(),
	}
}

// InitProgram asks the service to generate a training program from the
// onboarding profile.
func (c *Client) InitProgram(ctx context.Context, req ProgramInitRequest) (*ProgramInitResponse, error) {
	var resp ProgramInitResponse
	if err := c.do(ctx, http.MethodPost, "/api/program/init", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TodayWorkout fetches the editable plan for today
func (c *Client) TodayWorkout(ctx context.Context) (*TodayWorkoutResponse, error) {
	var resp TodayWorkoutResponse
	if err := c.do(ctx, http.MethodGet, "/api/workout/today", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateWorkout sends a batch of swap changes for a workout
func (c *Client) UpdateWorkout(ctx context.Context, req UpdateWorkoutRequest) (*UpdateWorkoutResponse, error) {
	var resp UpdateWorkoutResponse
	if err := c.do(ctx, http.MethodPatch, "/api/workout/update", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogSet mirrors one set completion to the service
func (c *Client) LogSet(ctx context.Context, req LogSetRequest) (*LogSetResponse, error) {
	var resp LogSetResponse
	if err := c.do(ctx, http.MethodPost, "/api/workout/log", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FinishWorkout marks a workout finished on the service
func (c *Client) FinishWorkout(ctx context.Context, workoutID string) (*FinishWorkoutResponse, error) {
	params := url.Values{}
	params.Set("workout_id", workoutID)

	var resp FinishWorkoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/workout/finish", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches logged weights keyed by exercise id. An empty exerciseID
// returns history for every exercise.
func (c *Client) History(ctx context.Context, exerciseID string) (HistoryResponse, error) {
	params := url.Values{}
	if exerciseID != "" {
		params.Set("exercise_id", exerciseID)
	}

	var resp HistoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/history", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ExerciseGuide fetches form guidance for an exercise by name
func (c *Client) ExerciseGuide(ctx context.Context, req ExerciseGuideRequest) (*ExerciseGuideResponse, error) {
	var resp ExerciseGuideResponse
	if err := c.do(ctx, http.MethodPost, "/api/exercise/guide", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
