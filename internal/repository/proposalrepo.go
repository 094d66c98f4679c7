package repository

import (
	"context"

	"github.com/gaegulzip/wowa/internal/model"
)

// ProposalRepository provides access to Base-change proposals.
type ProposalRepository interface {
	// Create inserts a pending proposal and fills ID/Status/ProposedAt.
	Create(ctx context.Context, baseWodID, proposedWodID int64) (*model.ProposedChange, error)

	// GetByID loads a proposal by ID.
	GetByID(ctx context.Context, id int64) (*model.ProposedChange, error)

	// List returns proposals matching the filter, newest first.
	List(ctx context.Context, f model.ProposalFilter) ([]model.ProposedChange, error)

	// Reject marks a pending proposal rejected and records who resolved it.
	// Returns errs.ErrConflict if the proposal is no longer pending.
	Reject(ctx context.Context, proposalID, rejecterID int64) (*model.ProposedChange, error)

	// ApproveSwap executes the Base promotion in a single transaction:
	// demote the old Base, promote the proposed WOD, resolve the proposal.
	// No reader may observe an intermediate state with zero or two Bases.
	// Returns errs.ErrConflict if the proposal is no longer pending.
	ApproveSwap(ctx context.Context, proposalID, baseWodID, proposedWodID, approverID int64) (*model.ProposedChange, error)
}
