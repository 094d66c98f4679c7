package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gaegulzip/wowa/internal/model"
)

// SelectionRepo implements SelectionRepository using PostgreSQL.
type SelectionRepo struct{ db *DB }

// NewSelectionRepo constructs a selection repository.
func NewSelectionRepo(db *DB) *SelectionRepo { return &SelectionRepo{db: db} }

// Upsert stores a user's daily choice. The unique constraint on
// (user_id, box_id, date) turns a re-selection into an overwrite of
// wod_id/snapshot_data with a refreshed created_at, never a second row.
func (r *SelectionRepo) Upsert(ctx context.Context, s *model.WodSelection) error {
	snapshot, err := json.Marshal(s.SnapshotData)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	const q = `
INSERT INTO wod_selections (user_id, wod_id, box_id, date, snapshot_data)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, box_id, date)
DO UPDATE SET wod_id=EXCLUDED.wod_id, snapshot_data=EXCLUDED.snapshot_data, created_at=now()
RETURNING id, created_at`
	row := r.db.Pool.QueryRow(ctx, q, s.UserID, s.WodID, s.BoxID, s.Date, snapshot)
	return row.Scan(&s.ID, &s.CreatedAt)
}

// ListByUser returns a user's selections ordered by date, optionally bounded
// by an inclusive range. Empty bounds are ignored.
func (r *SelectionRepo) ListByUser(ctx context.Context, userID int64, startDate, endDate string) ([]model.WodSelection, error) {
	q := `
SELECT id, user_id, wod_id, box_id, to_char(date, 'YYYY-MM-DD'), snapshot_data, created_at
FROM wod_selections
WHERE user_id=$1`
	args := []any{userID}
	if startDate != "" {
		args = append(args, startDate)
		q += fmt.Sprintf(` AND date>=$%d`, len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		q += fmt.Sprintf(` AND date<=$%d`, len(args))
	}
	q += ` ORDER BY date`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WodSelection
	for rows.Next() {
		var (
			s        model.WodSelection
			snapshot []byte
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.WodID, &s.BoxID, &s.Date, &snapshot, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(snapshot, &s.SnapshotData); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot (selection %d): %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
