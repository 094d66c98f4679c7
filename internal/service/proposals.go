package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
	"github.com/gaegulzip/wowa/internal/repository"
)

// ProposalService manages Base-change proposals. Approval and rejection are
// gated on ownership of the standard: only the current Base WOD's creator may
// resolve a proposal against it.
type ProposalService interface {
	// Create inserts a pending proposal. No authorization at this layer;
	// registration calls it internally.
	Create(ctx context.Context, baseWodID, proposedWodID int64) (*model.ProposedChange, error)
	// Approve promotes the proposed WOD to Base in one transaction.
	Approve(ctx context.Context, proposalID, approverID int64) (*model.ProposedChange, error)
	// Reject resolves the proposal without touching any WOD.
	Reject(ctx context.Context, proposalID, rejecterID int64) (*model.ProposedChange, error)
	// List returns proposals matching the filter.
	List(ctx context.Context, f model.ProposalFilter) ([]model.ProposedChange, error)
}

type ProposalServiceImpl struct {
	proposals repository.ProposalRepository
	wods      repository.WodRepository
	log       *zap.Logger
}

// NewProposalService constructs ProposalService.
func NewProposalService(proposals repository.ProposalRepository, wods repository.WodRepository, log *zap.Logger) *ProposalServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProposalServiceImpl{proposals: proposals, wods: wods, log: log}
}

// Create validates ids and inserts a pending proposal.
func (s *ProposalServiceImpl) Create(ctx context.Context, baseWodID, proposedWodID int64) (*model.ProposedChange, error) {
	if baseWodID <= 0 || proposedWodID <= 0 {
		return nil, fmt.Errorf("%w: baseWodId and proposedWodId must be positive", errs.ErrValidation)
	}
	return s.proposals.Create(ctx, baseWodID, proposedWodID)
}

// Approve checks ownership and delegates the atomic swap to the repository.
func (s *ProposalServiceImpl) Approve(ctx context.Context, proposalID, approverID int64) (*model.ProposedChange, error) {
	p, base, err := s.loadForResolve(ctx, proposalID, approverID, "approve")
	if err != nil {
		return nil, err
	}

	resolved, err := s.proposals.ApproveSwap(ctx, p.ID, p.BaseWodID, p.ProposedWodID, approverID)
	if err != nil {
		return nil, err
	}

	s.log.Info("base_wod_changed",
		zap.Int64("proposalId", p.ID),
		zap.Int64("oldBaseWodId", p.BaseWodID),
		zap.Int64("newBaseWodId", p.ProposedWodID),
		zap.Int64("boxId", base.BoxID),
		zap.String("date", base.Date),
	)
	return resolved, nil
}

// Reject checks ownership and resolves the proposal; WOD rows are untouched.
func (s *ProposalServiceImpl) Reject(ctx context.Context, proposalID, rejecterID int64) (*model.ProposedChange, error) {
	p, _, err := s.loadForResolve(ctx, proposalID, rejecterID, "reject")
	if err != nil {
		return nil, err
	}
	return s.proposals.Reject(ctx, p.ID, rejecterID)
}

// List validates the filter and queries.
func (s *ProposalServiceImpl) List(ctx context.Context, f model.ProposalFilter) ([]model.ProposedChange, error) {
	if f.BaseWodID < 0 {
		return nil, fmt.Errorf("%w: baseWodId must be positive", errs.ErrValidation)
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown proposal status %q", errs.ErrValidation, f.Status)
	}
	return s.proposals.List(ctx, f)
}

// loadForResolve loads the proposal and its Base WOD and enforces the
// ownership gate shared by approve and reject.
func (s *ProposalServiceImpl) loadForResolve(ctx context.Context, proposalID, resolverID int64, verb string) (*model.ProposedChange, *model.Wod, error) {
	if proposalID <= 0 || resolverID <= 0 {
		return nil, nil, fmt.Errorf("%w: proposalId and resolver id must be positive", errs.ErrValidation)
	}

	p, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return nil, nil, fmt.Errorf("proposal %d: %w", proposalID, err)
	}

	base, err := s.wods.GetByID(ctx, p.BaseWodID)
	if err != nil {
		return nil, nil, fmt.Errorf("base wod %d: %w", p.BaseWodID, err)
	}

	if base.CreatedBy != resolverID {
		return nil, nil, fmt.Errorf("%w: only the Base WOD creator may %s changes", errs.ErrForbidden, verb)
	}
	return p, base, nil
}
