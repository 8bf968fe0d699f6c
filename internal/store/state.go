package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"gymbuddy/internal/workout"
)

// snapshotKey is the fixed key the serialized app snapshot is stored under
const snapshotKey = "gymbuddy-app"

// Snapshot is everything rehydrated at startup: the profile and program
// from onboarding, finished sessions, and any workout left active when the
// app last closed.
type Snapshot struct {
	Profile            *workout.UserProfile      `json:"profile,omitempty"`
	StrengthEstimate   *workout.StrengthEstimate `json:"strengthEstimate,omitempty"`
	Program            *workout.Program          `json:"program,omitempty"`
	PastSessions       []workout.Session         `json:"pastSessions,omitempty"`
	CurrentSession     *workout.Session          `json:"currentSession,omitempty"`
	CurrentDayPlan     *workout.ProgramDay       `json:"currentDayPlan,omitempty"`
	OnboardingComplete bool                      `json:"onboardingComplete"`
}

// GetState retrieves a raw state value by key.
// Returns empty string if the key doesn't exist.
func (db *DB) GetState(key string) (string, error) {
	var value string
	err := db.QueryRow(`
		SELECT value FROM app_state WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// SetState sets a raw state value
func (db *DB) SetState(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// RemoveState deletes a state key
func (db *DB) RemoveState(key string) error {
	_, err := db.Exec(`DELETE FROM app_state WHERE key = ?`, key)
	return err
}

// LoadSnapshot rehydrates the persisted app snapshot.
// Returns ErrNoSnapshot on first run.
func (db *DB) LoadSnapshot() (*Snapshot, error) {
	raw, err := db.GetState(snapshotKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrNoSnapshot
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot persists the app snapshot under the fixed storage key
func (db *DB) SaveSnapshot(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return db.SetState(snapshotKey, string(data))
}

// ClearSnapshot removes the persisted snapshot, returning the app to its
// first-run state.
func (db *DB) ClearSnapshot() error {
	return db.RemoveState(snapshotKey)
}
