package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
)

// WodRepo implements WodRepository using PostgreSQL.
type WodRepo struct{ db *DB }

// NewWodRepo constructs a WOD repository.
func NewWodRepo(db *DB) *WodRepo { return &WodRepo{db: db} }

const wodColumns = `id, box_id, to_char(date, 'YYYY-MM-DD'), program_data, raw_text, is_base, created_by, created_at, updated_at`

// Create inserts a new WOD row. A unique violation on the Base partial index
// (two concurrent first submissions for the same box and date) comes back as
// errs.ErrConflict; callers may re-fetch and resubmit as Personal.
func (r *WodRepo) Create(ctx context.Context, w *model.Wod) error {
	program, err := json.Marshal(w.ProgramData)
	if err != nil {
		return fmt.Errorf("marshal program data: %w", err)
	}

	const q = `
INSERT INTO wods (box_id, date, program_data, raw_text, is_base, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, w.BoxID, w.Date, program, w.RawText, w.IsBase, w.CreatedBy)
	if err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID loads a single WOD.
func (r *WodRepo) GetByID(ctx context.Context, id int64) (*model.Wod, error) {
	q := `SELECT ` + wodColumns + ` FROM wods WHERE id=$1`
	return r.scanWod(r.db.Pool.QueryRow(ctx, q, id))
}

// GetBase loads the Base WOD for (boxID, date).
func (r *WodRepo) GetBase(ctx context.Context, boxID int64, date string) (*model.Wod, error) {
	q := `SELECT ` + wodColumns + ` FROM wods WHERE box_id=$1 AND date=$2 AND is_base`
	return r.scanWod(r.db.Pool.QueryRow(ctx, q, boxID, date))
}

// ListPersonal returns all Personal WODs for (boxID, date), oldest first.
func (r *WodRepo) ListPersonal(ctx context.Context, boxID int64, date string) ([]model.Wod, error) {
	q := `SELECT ` + wodColumns + ` FROM wods WHERE box_id=$1 AND date=$2 AND NOT is_base ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q, boxID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Wod
	for rows.Next() {
		var (
			w       model.Wod
			program []byte
		)
		if err := rows.Scan(&w.ID, &w.BoxID, &w.Date, &program, &w.RawText, &w.IsBase, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(program, &w.ProgramData); err != nil {
			return nil, fmt.Errorf("unmarshal program data (wod %d): %w", w.ID, err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WodRepo) scanWod(row pgx.Row) (*model.Wod, error) {
	var (
		w       model.Wod
		program []byte
	)
	if err := row.Scan(&w.ID, &w.BoxID, &w.Date, &program, &w.RawText, &w.IsBase, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(program, &w.ProgramData); err != nil {
		return nil, fmt.Errorf("unmarshal program data (wod %d): %w", w.ID, err)
	}
	return &w, nil
}
