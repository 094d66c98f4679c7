package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
)

// ProposalRepo implements ProposalRepository using PostgreSQL.
type ProposalRepo struct{ db *DB }

// NewProposalRepo constructs a proposal repository.
func NewProposalRepo(db *DB) *ProposalRepo { return &ProposalRepo{db: db} }

const proposalColumns = `id, base_wod_id, proposed_wod_id, status, proposed_at, resolved_at, resolved_by`

// Create inserts a pending proposal.
func (r *ProposalRepo) Create(ctx context.Context, baseWodID, proposedWodID int64) (*model.ProposedChange, error) {
	const q = `
INSERT INTO proposed_changes (base_wod_id, proposed_wod_id, status)
VALUES ($1, $2, 'pending')
RETURNING ` + proposalColumns
	return scanProposal(r.db.Pool.QueryRow(ctx, q, baseWodID, proposedWodID))
}

// GetByID loads a proposal.
func (r *ProposalRepo) GetByID(ctx context.Context, id int64) (*model.ProposedChange, error) {
	const q = `SELECT ` + proposalColumns + ` FROM proposed_changes WHERE id=$1`
	return scanProposal(r.db.Pool.QueryRow(ctx, q, id))
}

// List returns proposals matching the filter, newest first.
func (r *ProposalRepo) List(ctx context.Context, f model.ProposalFilter) ([]model.ProposedChange, error) {
	q := `SELECT ` + proposalColumns + ` FROM proposed_changes WHERE 1=1`
	var args []any
	if f.BaseWodID != 0 {
		args = append(args, f.BaseWodID)
		q += fmt.Sprintf(` AND base_wod_id=$%d`, len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		q += fmt.Sprintf(` AND status=$%d`, len(args))
	}
	q += ` ORDER BY id DESC`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ProposedChange
	for rows.Next() {
		var p model.ProposedChange
		if err := rows.Scan(&p.ID, &p.BaseWodID, &p.ProposedWodID, &p.Status, &p.ProposedAt, &p.ResolvedAt, &p.ResolvedBy); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Reject resolves a pending proposal without touching any WOD rows. The
// status guard makes terminal states final: resolving an already-resolved
// proposal yields errs.ErrConflict.
func (r *ProposalRepo) Reject(ctx context.Context, proposalID, rejecterID int64) (*model.ProposedChange, error) {
	const q = `
UPDATE proposed_changes
SET status='rejected', resolved_at=now(), resolved_by=$2
WHERE id=$1 AND status='pending'
RETURNING ` + proposalColumns
	p, err := scanProposal(r.db.Pool.QueryRow(ctx, q, proposalID, rejecterID))
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrConflict
	}
	return p, err
}

// ApproveSwap atomically demotes the old Base, promotes the proposed WOD and
// resolves the proposal. Demotion runs first so the Base partial unique
// index is never violated mid-transaction.
func (r *ProposalRepo) ApproveSwap(
	ctx context.Context, proposalID, baseWodID, proposedWodID, approverID int64,
) (p *model.ProposedChange, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
			p = nil
		}
	}()

	const demote = `UPDATE wods SET is_base=false, updated_at=now() WHERE id=$1`
	const promote = `UPDATE wods SET is_base=true, updated_at=now() WHERE id=$1`
	const resolve = `
UPDATE proposed_changes
SET status='approved', resolved_at=now(), resolved_by=$2
WHERE id=$1 AND status='pending'
RETURNING ` + proposalColumns

	if _, err = tx.Exec(ctx, demote, baseWodID); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, promote, proposedWodID); err != nil {
		return nil, err
	}
	p, err = scanProposal(tx.QueryRow(ctx, resolve, proposalID, approverID))
	if errors.Is(err, errs.ErrNotFound) {
		err = errs.ErrConflict
		return nil, err
	}
	return p, err
}

func scanProposal(row pgx.Row) (*model.ProposedChange, error) {
	var p model.ProposedChange
	if err := row.Scan(&p.ID, &p.BaseWodID, &p.ProposedWodID, &p.Status, &p.ProposedAt, &p.ResolvedAt, &p.ResolvedBy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
