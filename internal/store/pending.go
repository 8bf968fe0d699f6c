package store

import "time"

// Op kinds for the pending sync queue
const (
	OpLogSet        = "log_set"
	OpFinishWorkout = "finish_workout"
)

// PendingOp is one queued remote operation. Local mutations are applied
// immediately; their remote mirrors are queued here and drained best-effort,
// so retry policy can change without touching the mutation paths.
type PendingOp struct {
	ID        int64
	Kind      string
	Payload   string
	Attempts  int
	CreatedAt time.Time
}

// EnqueueOp appends a remote operation to the queue
func (db *DB) EnqueueOp(kind, payload string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO pending_ops (kind, payload) VALUES (?, ?)
	`, kind, payload)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// PendingOps returns queued operations, oldest first
func (db *DB) PendingOps(limit int) ([]PendingOp, error) {
	rows, err := db.Query(`
		SELECT id, kind, payload, attempts, created_at
		FROM pending_ops
		ORDER BY id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []PendingOp
	for rows.Next() {
		var op PendingOp
		var createdAt string
		if err := rows.Scan(&op.ID, &op.Kind, &op.Payload, &op.Attempts, &createdAt); err != nil {
			return nil, err
		}
		op.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// CompleteOp removes a successfully synced operation
func (db *DB) CompleteOp(id int64) error {
	_, err := db.Exec(`DELETE FROM pending_ops WHERE id = ?`, id)
	return err
}

// BumpOpAttempts records a failed sync attempt
func (db *DB) BumpOpAttempts(id int64) error {
	_, err := db.Exec(`UPDATE pending_ops SET attempts = attempts + 1 WHERE id = ?`, id)
	return err
}

// ClearPendingOps empties the queue. Used when saved state is discarded
// and the queued mirrors no longer reference anything.
func (db *DB) ClearPendingOps() error {
	_, err := db.Exec(`DELETE FROM pending_ops`)
	return err
}

// CountPendingOps returns the queue depth
func (db *DB) CountPendingOps() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM pending_ops`).Scan(&n)
	return n, err
}
